package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toyz/textsig/internal/annotations"
	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
	"github.com/toyz/textsig/internal/signature"
)

// RenderRequest describes one callable on the command line: the same facts
// the attributes of a declaration would carry
type RenderRequest struct {
	Role string

	// Signature is a parameter list in attribute form, e.g. "(a, /, b = None)"
	Signature string

	// TextSignature is an explicit override
	TextSignature *string

	// Suppress disables the signature entirely
	Suppress bool

	// Names are bare parameter names used when nothing else is given
	Names []string
}

// RenderSignature resolves and renders the text signature for a request.
// The boolean is false when no signature would be exposed.
func RenderSignature(req RenderRequest) (string, bool, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return "", false, errors.ConfigurationError("role", err.Error()).
			WithSuggestion("use one of free, module, instance, class, static")
	}

	var fragments []annotations.Fragment
	loc := errors.SourceLocation{File: "<command line>", Line: 1, Column: 1}

	if sig := strings.TrimSpace(req.Signature); sig != "" {
		if !strings.HasPrefix(sig, "(") {
			sig = "(" + sig + ")"
		}
		fragments = append(fragments, annotations.Fragment{
			Text:     fmt.Sprintf("#[pyo3(signature = %s)]", sig),
			Location: loc,
		})
	}

	switch {
	case req.Suppress:
		fragments = append(fragments, annotations.Fragment{
			Text:     "#[pyo3(text_signature = None)]",
			Location: loc,
		})
	case req.TextSignature != nil:
		fragments = append(fragments, annotations.Fragment{
			Text:     fmt.Sprintf("#[pyo3(text_signature = %s)]", strconv.Quote(*req.TextSignature)),
			Location: loc,
		})
	}

	decl, err := annotations.ParseDeclaration(fragments)
	if err != nil {
		return "", false, err
	}

	annots := decl.Signature
	annots.Names = req.Names

	text, ok := signature.RenderForRole(role, signature.ResolveSource(annots))
	return text, ok, nil
}
