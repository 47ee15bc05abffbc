package signature

import "github.com/toyz/textsig/internal/models"

// Annotations gathers every signature-related fact found on one declaration.
// Several may be set at once; ResolveSource picks the winner.
type Annotations struct {
	Suppressed bool                  // text_signature = None
	Override   *string               // text_signature = "..."
	Declared   *models.ParameterList // signature = (...)
	Names      []string              // parameter names in declaration order
}

// ResolveSource applies the precedence suppression > override > declared > absent
func ResolveSource(a Annotations) models.SignatureSource {
	switch {
	case a.Suppressed:
		return models.SuppressedExplicitly{}
	case a.Override != nil:
		return models.ExplicitOverride{Text: *a.Override}
	case a.Declared != nil:
		return models.Declared{Params: a.Declared}
	default:
		return models.NewAbsent(a.Names...)
	}
}
