package signature

import (
	"strings"

	"github.com/toyz/textsig/internal/models"
)

// Signature markers
const (
	PositionalOnlyMarker = "/"
	KeywordOnlyMarker    = "*"
	varPositionalPrefix  = "*"
	varKeywordPrefix     = "**"
	tokenSeparator       = ", "
)

// Render produces the text signature for a source. The boolean is false when
// no signature should be exposed.
//
// Suppression always wins and an override is returned verbatim. Absent sources
// render a flat name list with no markers and no defaults, since nothing is
// known about categories. A nil source yields no signature.
func Render(receiver models.ReceiverKind, src models.SignatureSource) (string, bool) {
	switch s := src.(type) {
	case models.SuppressedExplicitly:
		return "", false
	case models.ExplicitOverride:
		return s.Text, true
	case models.Declared:
		return renderDeclared(receiver, s.Params), true
	case models.Absent:
		return renderAbsent(receiver, s.Names), true
	default:
		return "", false
	}
}

// RenderForRole classifies the role and renders in one step
func RenderForRole(role models.Role, src models.SignatureSource) (string, bool) {
	return Render(Classify(role), src)
}

func renderDeclared(receiver models.ReceiverKind, params *models.ParameterList) string {
	if receiver == models.ReceiverNone {
		receiver = params.Receiver()
	}

	positionalOnly := params.Group(models.CategoryPositionalOnly)
	positionalOrKeyword := params.Group(models.CategoryPositionalOrKeyword)
	keywordOnly := params.Group(models.CategoryKeywordOnly)
	varPositional, hasVarPositional := params.VarPositional()
	varKeyword, hasVarKeyword := params.VarKeyword()

	tokens := receiverTokens(receiver)

	for _, p := range positionalOnly {
		tokens = append(tokens, parameterToken(p))
	}
	followedByMore := len(positionalOrKeyword) > 0 || hasVarPositional || len(keywordOnly) > 0 || hasVarKeyword
	if len(positionalOnly) > 0 && followedByMore {
		tokens = append(tokens, PositionalOnlyMarker)
	}

	for _, p := range positionalOrKeyword {
		tokens = append(tokens, parameterToken(p))
	}

	// *args and a bare * are mutually exclusive
	if hasVarPositional {
		tokens = append(tokens, varPositionalPrefix+varPositional.Name)
	} else if len(keywordOnly) > 0 {
		tokens = append(tokens, KeywordOnlyMarker)
	}

	for _, p := range keywordOnly {
		tokens = append(tokens, parameterToken(p))
	}

	if hasVarKeyword {
		tokens = append(tokens, varKeywordPrefix+varKeyword.Name)
	}

	return wrap(tokens)
}

func renderAbsent(receiver models.ReceiverKind, names []string) string {
	tokens := receiverTokens(receiver)
	return wrap(append(tokens, names...))
}

func receiverTokens(receiver models.ReceiverKind) []string {
	if token := receiver.Token(); token != "" {
		return []string{token}
	}
	return nil
}

func parameterToken(p models.Parameter) string {
	if !p.Default.IsPresent() {
		return p.Name
	}
	return p.Name + "=" + p.Default.RenderText()
}

func wrap(tokens []string) string {
	return "(" + strings.Join(tokens, tokenSeparator) + ")"
}
