package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/textsig/internal/cli"
	"github.com/toyz/textsig/internal/mcpserver"
	"github.com/toyz/textsig/internal/utils"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run as MCP server (communicates via stdio)",
		Long: `Run as an MCP server that communicates via stdio.
Exposes tools: render_text_signature, inspect_source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cli.DefaultConfig()
			cfg.Verbose = verboseFlag

			// stdout carries the protocol; only errors go to stderr
			diagnostics := utils.NewQuietDiagnostics()
			if verboseFlag {
				diagnostics = utils.NewVerboseDiagnostics()
			}

			return mcpserver.Run(cmd.Context(), cli.NewInspector(cfg, diagnostics), version)
		},
	}
}
