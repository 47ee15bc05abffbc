// Package synth turns Callable records into the introspection metadata the
// host exposes as __doc__ and __text_signature__.
package synth

import (
	"github.com/toyz/textsig/internal/docs"
	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
	"github.com/toyz/textsig/internal/signature"
)

// Option configures synthesis
type Option func(*options)

type options struct {
	internalDoc bool
}

// WithInternalDoc also composes the combined "name(sig)\n--\n\ndoc" string
func WithInternalDoc() Option {
	return func(o *options) {
		o.internalDoc = true
	}
}

// Synthesize computes the metadata for one callable. It is pure: the same
// callable always yields the same metadata.
func Synthesize(c models.Callable, opts ...Option) (models.Metadata, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if c.Name == "" {
		return models.Metadata{}, errors.NewValidationError("callable name", "a non-empty name", `""`).
			WithLocation(c.Location)
	}

	meta := models.Metadata{
		Name:          c.Name,
		QualifiedName: c.QualifiedName(),
		Kind:          c.Kind.String(),
		Location:      c.Location,
	}
	if c.Kind == models.KindFunction {
		meta.Role = c.Role.String()
	}

	doc, hasDoc := docs.Aggregate(c.Doc)
	if hasDoc {
		meta.Doc = &doc
	}

	sig, hasSig := textSignature(c)
	if hasSig {
		meta.TextSignature = &sig
	}

	if o.internalDoc {
		if internal, ok := docs.ComposeInternalDoc(c.Name, sig, hasSig, doc, hasDoc); ok {
			meta.InternalDoc = &internal
		}
	}

	return meta, nil
}

// textSignature renders the signature of a callable. A type object only
// exposes a signature somebody wrote out explicitly.
func textSignature(c models.Callable) (string, bool) {
	if c.Source == nil {
		return "", false
	}
	if c.Kind == models.KindType && c.Source.Kind() != models.SourceExplicitOverride {
		return "", false
	}
	return signature.RenderForRole(c.Role, c.Source)
}

// SynthesizeAll processes a batch in order. A failing callable is reported
// in the returned error and skipped; it never aborts the rest.
func SynthesizeAll(callables []models.Callable, opts ...Option) ([]models.Metadata, error) {
	results := make([]models.Metadata, 0, len(callables))
	errs := errors.NewMultipleErrors()

	for _, c := range callables {
		meta, err := Synthesize(c, opts...)
		if err != nil {
			errs.Add(errors.AsTextsigError(err))
			continue
		}
		results = append(results, meta)
	}

	return results, errs.ErrorOrNil()
}
