// Package manifest loads callable declarations written out by hand in YAML.
// Manifests are the only way to give a parameter a literal default text.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"

	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
	"github.com/toyz/textsig/internal/registry"
	"github.com/toyz/textsig/internal/signature"
)

// FileSuffix marks a manifest file
const FileSuffix = ".textsig.yaml"

// IsManifest reports whether path names a manifest file
func IsManifest(path string) bool {
	return strings.HasSuffix(path, FileSuffix)
}

// Manifest is the top-level document
type Manifest struct {
	Module    string          `yaml:"module"`
	Callables []CallableEntry `yaml:"callables"`
}

// CallableEntry describes one callable or type
type CallableEntry struct {
	Name              string           `yaml:"name"`
	Kind              string           `yaml:"kind"`
	Role              string           `yaml:"role"`
	Owner             string           `yaml:"owner"`
	Doc               []string         `yaml:"doc"`
	TextSignature     *string          `yaml:"text_signature"`
	SuppressSignature bool             `yaml:"suppress_signature"`
	Names             []string         `yaml:"names"`
	Parameters        []ParameterEntry `yaml:"parameters"`
}

// ParameterEntry is one declared parameter. A default with text is rendered
// literally; has_default without text renders as "...".
type ParameterEntry struct {
	Name       string  `yaml:"name"`
	Category   string  `yaml:"category"`
	HasDefault bool    `yaml:"has_default"`
	Default    *string `yaml:"default"`
}

// Load reads and converts a manifest file
func Load(path string) ([]models.Callable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	return Parse(data, path)
}

// Parse decodes manifest YAML. Unknown fields are rejected. Every entry is
// converted independently; the callables that converted cleanly are returned
// alongside a MultipleErrors describing the rest. A manifest describes one
// module, so a qualified name may appear only once.
func Parse(data []byte, file string) ([]models.Callable, error) {
	var m Manifest
	if err := yaml.UnmarshalWithOptions(data, &m, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.WrapParseError(fmt.Sprintf("manifest '%s'", file), err).
			WithLocation(errors.SourceLocation{File: file}).
			WithSuggestion("manifest keys are module and callables; see the callable entry fields")
	}

	locations := entryLocations(data, file, len(m.Callables))
	reg := registry.NewCallableRegistry()
	errs := errors.NewMultipleErrors()

	for i, entry := range m.Callables {
		c, err := entry.toCallable(locations[i])
		if err == nil {
			err = reg.Register(c)
		}
		if err != nil {
			errs.Add(errors.AsTextsigError(err))
		}
	}

	return reg.List(), errs.ErrorOrNil()
}

// entryLocations finds the line each callables entry starts on. Entries
// whose position cannot be recovered get a location without a line.
func entryLocations(data []byte, file string, count int) []errors.SourceLocation {
	locs := make([]errors.SourceLocation, count)
	for i := range locs {
		locs[i].File = file
	}

	doc, err := parser.ParseBytes(data, 0)
	if err != nil {
		return locs
	}
	for i := range locs {
		path, err := yaml.PathString(fmt.Sprintf("$.callables[%d]", i))
		if err != nil {
			continue
		}
		node, err := path.FilterFile(doc)
		if err != nil || node == nil {
			continue
		}
		if tok := node.GetToken(); tok != nil && tok.Position != nil {
			locs[i].Line = tok.Position.Line
		}
	}
	return locs
}

// toCallable converts one entry located at loc
func (e CallableEntry) toCallable(loc errors.SourceLocation) (models.Callable, error) {
	name := models.NormalizeIdentifier(e.Name)
	if name == "" {
		return models.Callable{}, errors.NewValidationError("callable name", "a non-empty name", `""`).
			WithLocation(loc)
	}

	kind := models.KindFunction
	switch e.Kind {
	case "", "function":
	case "type", "class":
		kind = models.KindType
	default:
		return models.Callable{}, errors.NewValidationError("kind", "function or type", fmt.Sprintf("'%s'", e.Kind)).
			WithLocation(loc)
	}

	role, err := models.ParseRole(e.Role)
	if err != nil {
		return models.Callable{}, errors.NewValidationError("role", "free, module, instance, class or static", fmt.Sprintf("'%s'", e.Role)).
			WithLocation(loc)
	}

	annots := signature.Annotations{
		Suppressed: e.SuppressSignature,
		Override:   e.TextSignature,
		Names:      e.Names,
	}

	if len(e.Parameters) > 0 {
		if len(e.Names) > 0 {
			return models.Callable{}, errors.NewValidationError("callable "+name, "either names or parameters", "both").
				WithLocation(loc)
		}
		list, err := buildParameters(e.Parameters)
		if err != nil {
			return models.Callable{}, locate(err, loc)
		}
		annots.Declared = list
	}

	return models.Callable{
		Name:     name,
		Owner:    models.NormalizeIdentifier(e.Owner),
		Kind:     kind,
		Role:     role,
		Source:   signature.ResolveSource(annots),
		Doc:      models.DocFragments(e.Doc),
		Location: loc,
	}, nil
}

func buildParameters(entries []ParameterEntry) (*models.ParameterList, error) {
	params := make([]models.Parameter, 0, len(entries))
	for _, p := range entries {
		category, err := models.ParseParameterCategory(p.Category)
		if err != nil {
			return nil, errors.NewValidationError("parameter category", "a known category", fmt.Sprintf("'%s'", p.Category))
		}
		if category == models.CategoryImplicitReceiver {
			return nil, errors.NewValidationError("parameter category", "an explicit parameter", "implicit_receiver").
				WithSuggestion("the receiver follows from the role; remove it from parameters")
		}

		def := models.NoDefault()
		switch {
		case p.Default != nil:
			def = models.LiteralDefault(*p.Default)
		case p.HasDefault:
			def = models.OpaqueDefault()
		}
		params = append(params, models.NewParameter(p.Name, category, def))
	}
	return models.NewParameterList(params...)
}

func locate(err error, loc errors.SourceLocation) error {
	switch e := err.(type) {
	case *errors.OrderingError:
		return e.WithLocation(loc)
	case *errors.ValidationError:
		return e.WithLocation(loc)
	default:
		return err
	}
}
