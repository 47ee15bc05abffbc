package annotations

import (
	"fmt"
	"sort"
	"strings"

	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
	"github.com/toyz/textsig/internal/signature"
)

// Fragment is one attribute or comment attached to an item, in source order
type Fragment struct {
	Text     string
	Location errors.SourceLocation
}

// Declaration is everything the attributes and doc comments of one item say
type Declaration struct {
	Name       string // from name = "...", normalized; empty when not given
	PassModule bool
	Signature  signature.Annotations
	Doc        models.DocFragments
	Location   errors.SourceLocation

	kinds             map[AttributeKind]bool
	seenSignature     bool
	seenTextSignature bool
}

// Has reports whether an attribute of the given kind was present
func (d *Declaration) Has(kind AttributeKind) bool {
	return d.kinds[kind]
}

// Exposed returns the attribute that exports the item to Python, if any:
// PyClassAttribute for types, PyFunctionAttribute or PyFnAttribute for functions
func (d *Declaration) Exposed() (AttributeKind, bool) {
	for _, kind := range []AttributeKind{PyClassAttribute, PyFunctionAttribute, PyFnAttribute} {
		if d.Has(kind) {
			return kind, true
		}
	}
	return UnknownAttribute, false
}

// ParseDeclaration folds the fragments of one item into a Declaration.
// Doc comments keep their relative order regardless of the attributes
// between them. Attributes this package does not know are skipped.
func ParseDeclaration(fragments []Fragment) (*Declaration, error) {
	decl := &Declaration{kinds: make(map[AttributeKind]bool)}
	if len(fragments) > 0 {
		decl.Location = fragments[0].Location
	}

	for _, fragment := range fragments {
		if line, ok := DocCommentText(fragment.Text); ok {
			decl.Doc = append(decl.Doc, line)
			continue
		}

		kind, err := ParseAttributeKind(AttributeName(fragment.Text))
		if err != nil {
			continue
		}

		attr, err := ParseAttribute(fragment.Text, fragment.Location)
		if err != nil {
			return nil, err
		}

		if err := decl.apply(kind, attr, fragment.Location); err != nil {
			return nil, err
		}
	}

	return decl, nil
}

func (d *Declaration) apply(kind AttributeKind, attr *Attribute, loc errors.SourceLocation) error {
	d.kinds[kind] = true

	switch kind {
	case DocAttribute:
		if attr.Value == nil || attr.Value.String == nil {
			return errors.NewSyntaxError("doc attribute must be a string literal").
				WithLocation(loc).
				WithSuggestion(`write #[doc = "text"]`)
		}
		d.Doc = append(d.Doc, unquote(*attr.Value.String))
		return nil
	case PyFunctionAttribute, PyFnAttribute, PyO3Attribute, PyClassAttribute:
		if attr.Args == nil {
			return nil
		}
		return d.applyArguments(kind, attr.Args.Args, loc)
	default:
		return nil
	}
}

func (d *Declaration) applyArguments(kind AttributeKind, args []*Argument, loc errors.SourceLocation) error {
	schema, hasSchema := SchemaFor(kind)

	for i, arg := range args {
		// #[pyfn(m, ...)] names the module binding first
		if kind == PyFnAttribute && i == 0 && arg.Value == nil {
			continue
		}

		if hasSchema && schema.Arguments != nil {
			if _, ok := schema.Arguments[arg.Key]; !ok {
				return errors.NewValidationError(fmt.Sprintf("%s argument", kind), oneOf(schema.Arguments), fmt.Sprintf("'%s'", arg.Key)).
					WithLocation(loc)
			}
		}

		switch arg.Key {
		case "signature":
			if err := d.applySignature(arg, loc); err != nil {
				return err
			}
		case "text_signature":
			if err := d.applyTextSignature(arg, loc); err != nil {
				return err
			}
		case "name":
			if arg.Value == nil || arg.Value.String == nil {
				return errors.NewValidationError("name", "a string literal", "nothing").WithLocation(loc)
			}
			d.Name = models.NormalizeIdentifier(unquote(*arg.Value.String))
		case "pass_module":
			d.PassModule = true
		}
	}
	return nil
}

func (d *Declaration) applySignature(arg *Argument, loc errors.SourceLocation) error {
	if d.seenSignature {
		return errors.NewValidationError("signature", "a single signature", "a second signature").
			WithLocation(loc).
			WithSuggestion("keep only one signature = (...) per function")
	}
	d.seenSignature = true

	if arg.Value == nil || arg.Value.Signature == nil {
		return errors.NewSyntaxError("signature must be a parenthesized parameter list").
			WithLocation(loc).
			WithSuggestion("write signature = (a, /, b = None, *, c = 5)")
	}

	list, err := BuildParameterList(arg.Value.Signature)
	if err != nil {
		return withLocation(err, loc)
	}
	d.Signature.Declared = list
	return nil
}

func (d *Declaration) applyTextSignature(arg *Argument, loc errors.SourceLocation) error {
	if d.seenTextSignature {
		return errors.NewValidationError("text_signature", "a single text_signature", "a second text_signature").
			WithLocation(loc)
	}
	d.seenTextSignature = true

	switch {
	case arg.Value.IsNone():
		d.Signature.Suppressed = true
	case arg.Value != nil && arg.Value.String != nil:
		text := unquote(*arg.Value.String)
		d.Signature.Override = &text
	default:
		return errors.NewSyntaxError("text_signature must be a string literal or None").
			WithLocation(loc).
			WithSuggestion(`write text_signature = "(a, b)" or text_signature = None`)
	}
	return nil
}

// DocCommentText returns the doc text of an outer doc comment, stripping the
// marker and a single leading space. Plain comments are not doc comments.
func DocCommentText(text string) (string, bool) {
	text = strings.TrimRight(text, "\r\n")
	switch {
	case strings.HasPrefix(text, "///") && !strings.HasPrefix(text, "////"):
		return strings.TrimPrefix(strings.TrimPrefix(text, "///"), " "), true
	case strings.HasPrefix(text, "/**") && !strings.HasPrefix(text, "/***") && text != "/**/":
		inner := strings.TrimSuffix(strings.TrimPrefix(text, "/**"), "*/")
		if !strings.ContainsAny(inner, "\r\n") {
			return strings.TrimPrefix(inner, " "), true
		}
		return blockDocText(inner), true
	default:
		return "", false
	}
}

// blockDocText trims a multi-line /** */ body the way rustdoc does: blank
// first and last lines go, then either a leading "*" column or the common
// indentation of the remaining lines. Text on the opening line is kept as is.
func blockDocText(inner string) string {
	lines := strings.Split(strings.ReplaceAll(inner, "\r\n", "\n"), "\n")

	var out []string
	if head := strings.TrimPrefix(lines[0], " "); strings.TrimSpace(head) != "" {
		out = append(out, head)
	}
	rest := lines[1:]
	if n := len(rest); n > 0 && strings.TrimSpace(rest[n-1]) == "" {
		rest = rest[:n-1]
	}

	starred := true
	indent := -1
	for _, line := range rest {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "*") {
			starred = false
		}
		if n := len(line) - len(trimmed); indent < 0 || n < indent {
			indent = n
		}
	}

	for _, line := range rest {
		switch {
		case strings.TrimSpace(line) == "":
			line = ""
		case starred:
			line = strings.TrimPrefix(strings.TrimPrefix(strings.TrimLeft(line, " \t"), "*"), " ")
		default:
			line = line[indent:]
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func withLocation(err error, loc errors.SourceLocation) error {
	switch e := err.(type) {
	case *errors.OrderingError:
		return e.WithLocation(loc)
	case *errors.ValidationError:
		return e.WithLocation(loc)
	case *errors.SyntaxError:
		return e.WithLocation(loc)
	default:
		return err
	}
}

func oneOf(specs map[string]ArgumentSpec) string {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "one of " + strings.Join(keys, ", ")
}
