package models

import (
	"fmt"

	"github.com/toyz/textsig/internal/errors"
)

// ParameterCategory classifies how an argument may be supplied
type ParameterCategory int

const (
	CategoryImplicitReceiver ParameterCategory = iota
	CategoryPositionalOnly
	CategoryPositionalOrKeyword
	CategoryVarPositional
	CategoryKeywordOnly
	CategoryVarKeyword
)

// String returns the string representation of the category
func (c ParameterCategory) String() string {
	switch c {
	case CategoryImplicitReceiver:
		return "implicit_receiver"
	case CategoryPositionalOnly:
		return "positional_only"
	case CategoryPositionalOrKeyword:
		return "positional_or_keyword"
	case CategoryVarPositional:
		return "var_positional"
	case CategoryKeywordOnly:
		return "keyword_only"
	case CategoryVarKeyword:
		return "var_keyword"
	default:
		return "unknown"
	}
}

// ParseParameterCategory converts a string to a ParameterCategory
func ParseParameterCategory(s string) (ParameterCategory, error) {
	switch s {
	case "implicit_receiver":
		return CategoryImplicitReceiver, nil
	case "positional_only":
		return CategoryPositionalOnly, nil
	case "positional_or_keyword", "":
		return CategoryPositionalOrKeyword, nil
	case "var_positional":
		return CategoryVarPositional, nil
	case "keyword_only":
		return CategoryKeywordOnly, nil
	case "var_keyword":
		return CategoryVarKeyword, nil
	default:
		return 0, fmt.Errorf("unknown parameter category: %s", s)
	}
}

// ReceiverKind identifies the implicit first argument bound by a calling convention
type ReceiverKind int

const (
	ReceiverNone ReceiverKind = iota
	ReceiverModule
	ReceiverInstance
	ReceiverClass
)

// Token returns the pseudo-parameter used in text signatures, or "" for ReceiverNone
func (r ReceiverKind) Token() string {
	switch r {
	case ReceiverModule:
		return "$module"
	case ReceiverInstance:
		return "$self"
	case ReceiverClass:
		return "$cls"
	default:
		return ""
	}
}

// DefaultKind is the tri-state default indicator
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	DefaultOpaque
	DefaultLiteral
)

// OpaqueDefaultMarker is rendered for every default whose text is unknown
const OpaqueDefaultMarker = "..."

// DefaultState records whether a parameter has a default and, when the author
// supplied one, its literal text
type DefaultState struct {
	Kind DefaultKind
	Text string
}

func NoDefault() DefaultState { return DefaultState{Kind: DefaultNone} }

func OpaqueDefault() DefaultState { return DefaultState{Kind: DefaultOpaque} }

// LiteralDefault records a default whose textual form was given explicitly
func LiteralDefault(text string) DefaultState {
	return DefaultState{Kind: DefaultLiteral, Text: text}
}

// IsPresent reports whether the parameter has any default
func (d DefaultState) IsPresent() bool {
	return d.Kind != DefaultNone
}

// RenderText returns the text written after "=" for a present default
func (d DefaultState) RenderText() string {
	if d.Kind == DefaultLiteral {
		return d.Text
	}
	return OpaqueDefaultMarker
}

// Parameter is one formal parameter of a callable
type Parameter struct {
	Name     string
	Category ParameterCategory
	Default  DefaultState
	Receiver ReceiverKind // only meaningful for CategoryImplicitReceiver
}

// NewParameter creates a parameter with a normalized name
func NewParameter(name string, category ParameterCategory, def DefaultState) Parameter {
	return Parameter{
		Name:     NormalizeIdentifier(name),
		Category: category,
		Default:  def,
	}
}

// NewReceiverParameter creates the implicit receiver slot for the given convention
func NewReceiverParameter(kind ReceiverKind) Parameter {
	return Parameter{
		Name:     kind.Token(),
		Category: CategoryImplicitReceiver,
		Receiver: kind,
	}
}

// ParameterList is an immutable, validated parameter list
type ParameterList struct {
	params []Parameter
}

// NewParameterList validates the ordering rules and returns an immutable list.
// The error is an *errors.OrderingError or *errors.ValidationError.
func NewParameterList(params ...Parameter) (*ParameterList, error) {
	seen := make(map[string]bool, len(params))
	prev := CategoryImplicitReceiver
	var hasVarPositional, hasVarKeyword bool

	for i, p := range params {
		if p.Category == CategoryImplicitReceiver {
			if i != 0 {
				return nil, errors.NewOrderingError(p.Name, i, "implicit receiver must be the first parameter")
			}
			if p.Receiver == ReceiverNone {
				return nil, errors.NewValidationError("receiver", "$module, $self or $cls", "none")
			}
			if p.Default.IsPresent() {
				return nil, errors.NewValidationError("default", "no default on the implicit receiver", p.Default.RenderText())
			}
			continue
		}

		if p.Name == "" {
			return nil, errors.NewValidationError("parameter name", "a non-empty identifier", `""`).
				WithSuggestion(fmt.Sprintf("name the parameter at position %d", i))
		}
		if seen[p.Name] {
			return nil, errors.NewValidationError("parameter name", "unique names", fmt.Sprintf("duplicate '%s'", p.Name))
		}
		seen[p.Name] = true

		switch p.Category {
		case CategoryVarPositional:
			if hasVarPositional {
				return nil, errors.NewOrderingError(p.Name, i, "only one variadic positional parameter is allowed")
			}
			hasVarPositional = true
		case CategoryVarKeyword:
			if hasVarKeyword {
				return nil, errors.NewOrderingError(p.Name, i, "only one variadic keyword parameter is allowed")
			}
			hasVarKeyword = true
		}

		if p.Category < prev {
			return nil, errors.NewOrderingError(p.Name, i,
				fmt.Sprintf("%s parameter cannot follow a %s parameter", p.Category, prev)).
				WithSuggestion("declare positional-only, positional-or-keyword, *args, keyword-only and **kwargs in that order")
		}
		prev = p.Category

		if p.Default.IsPresent() && (p.Category == CategoryVarPositional || p.Category == CategoryVarKeyword) {
			return nil, errors.NewValidationError("default", "no default on a variadic parameter",
				fmt.Sprintf("'%s=%s'", p.Name, p.Default.RenderText()))
		}
	}

	copied := make([]Parameter, len(params))
	copy(copied, params)
	return &ParameterList{params: copied}, nil
}

// MustParameterList panics when the list is invalid; intended for tests and static tables
func MustParameterList(params ...Parameter) *ParameterList {
	list, err := NewParameterList(params...)
	if err != nil {
		panic(err)
	}
	return list
}

// Params returns a copy of all parameters in declaration order
func (l *ParameterList) Params() []Parameter {
	if l == nil {
		return nil
	}
	out := make([]Parameter, len(l.params))
	copy(out, l.params)
	return out
}

// Len returns the number of parameters including any receiver
func (l *ParameterList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.params)
}

// Receiver returns the receiver declared in the list itself
func (l *ParameterList) Receiver() ReceiverKind {
	if l.Len() > 0 && l.params[0].Category == CategoryImplicitReceiver {
		return l.params[0].Receiver
	}
	return ReceiverNone
}

// Group returns the parameters of one category in declaration order
func (l *ParameterList) Group(category ParameterCategory) []Parameter {
	if l == nil {
		return nil
	}
	var out []Parameter
	for _, p := range l.params {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// VarPositional returns the *args parameter if present
func (l *ParameterList) VarPositional() (Parameter, bool) {
	group := l.Group(CategoryVarPositional)
	if len(group) == 0 {
		return Parameter{}, false
	}
	return group[0], true
}

// VarKeyword returns the **kwargs parameter if present
func (l *ParameterList) VarKeyword() (Parameter, bool) {
	group := l.Group(CategoryVarKeyword)
	if len(group) == 0 {
		return Parameter{}, false
	}
	return group[0], true
}

// Names returns the visible parameter names, without the receiver
func (l *ParameterList) Names() []string {
	var names []string
	for _, p := range l.Params() {
		if p.Category != CategoryImplicitReceiver {
			names = append(names, p.Name)
		}
	}
	return names
}
