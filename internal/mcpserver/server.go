// Package mcpserver exposes signature rendering and source inspection as
// Model Context Protocol tools.
package mcpserver

import (
	"bytes"
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/toyz/textsig/internal/cli"
)

// New creates an MCP server with the textsig tools registered
func New(inspector *cli.Inspector, version string) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "textsig",
		Version: version,
	}, nil)

	mcp.AddTool(s, RenderTool(), RenderHandler())
	mcp.AddTool(s, InspectTool(), InspectHandler(inspector))

	return s
}

// Run serves the tools over stdio until ctx is done or the client disconnects
func Run(ctx context.Context, inspector *cli.Inspector, version string) error {
	return New(inspector, version).Run(ctx, &mcp.StdioTransport{})
}

// RenderInput is the input schema for render_text_signature
type RenderInput struct {
	Role          string   `json:"role,omitempty" jsonschema_description:"Calling convention: free, module, instance, class or static. Defaults to free."`
	Signature     string   `json:"signature,omitempty" jsonschema_description:"Declared parameter list in pyo3 attribute form, e.g. (a, /, b = None, *, c = 5)."`
	TextSignature *string  `json:"text_signature,omitempty" jsonschema_description:"Explicit text signature override, returned verbatim."`
	Suppress      bool     `json:"suppress,omitempty" jsonschema_description:"Suppress the signature entirely, as text_signature = None does."`
	Names         []string `json:"names,omitempty" jsonschema_description:"Bare parameter names, used when neither signature nor text_signature is given."`
}

// RenderTool describes the render_text_signature tool
func RenderTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "render_text_signature",
		Description: "Render the __text_signature__ a Python callable would expose, given its calling convention and declared parameters. Returns None when the signature is suppressed.",
	}
}

// RenderHandler handles render_text_signature
func RenderHandler() func(context.Context, *mcp.CallToolRequest, RenderInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, any, error) {
		text, ok, err := cli.RenderSignature(cli.RenderRequest{
			Role:          input.Role,
			Signature:     input.Signature,
			TextSignature: input.TextSignature,
			Suppress:      input.Suppress,
			Names:         input.Names,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}
		if !ok {
			text = "None"
		}
		return textResult(text), nil, nil
	}
}

// InspectInput is the input schema for inspect_source
type InspectInput struct {
	Path    string `json:"path,omitempty" jsonschema_description:"File, directory or dir/... pattern to inspect. Ignored when content is given."`
	Content string `json:"content,omitempty" jsonschema_description:"Inline Rust source or manifest YAML to inspect instead of reading files."`
	Name    string `json:"name,omitempty" jsonschema_description:"File name for inline content; a .textsig.yaml suffix selects manifest parsing. Defaults to inline.rs."`
}

// InspectTool describes the inspect_source tool
func InspectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "inspect_source",
		Description: "Extract every pyo3-exposed function, method and class from Rust sources or textsig manifests and report the __doc__ and __text_signature__ each would have, as JSON.",
	}
}

// InspectHandler handles inspect_source
func InspectHandler(inspector *cli.Inspector) func(context.Context, *mcp.CallToolRequest, InspectInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input InspectInput) (*mcp.CallToolResult, any, error) {
		var report *cli.Report

		if input.Content != "" {
			name := input.Name
			if name == "" {
				name = "inline.rs"
			}
			report = &cli.Report{Files: []*cli.FileReport{
				inspector.InspectSource(ctx, name, []byte(input.Content)),
			}}
		} else {
			path := input.Path
			if path == "" {
				path = "./..."
			}
			var err error
			report, err = inspector.InspectPaths(ctx, []string{path})
			if err != nil {
				return errorResult(err), nil, nil
			}
		}

		var buf bytes.Buffer
		if err := report.WriteJSON(&buf); err != nil {
			return nil, nil, fmt.Errorf("failed to encode report: %w", err)
		}
		return textResult(buf.String()), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	result := textResult(err.Error())
	result.IsError = true
	return result
}
