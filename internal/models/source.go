package models

// SourceKind identifies the variant of a SignatureSource
type SourceKind int

const (
	SourceAbsent SourceKind = iota
	SourceDeclared
	SourceExplicitOverride
	SourceSuppressed
)

// String returns the string representation of the source kind
func (k SourceKind) String() string {
	switch k {
	case SourceAbsent:
		return "absent"
	case SourceDeclared:
		return "declared"
	case SourceExplicitOverride:
		return "override"
	case SourceSuppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// SignatureSource is where a callable's text signature comes from.
// Exactly one of Absent, Declared, ExplicitOverride or SuppressedExplicitly.
type SignatureSource interface {
	Kind() SourceKind
}

// Absent means no signature metadata was declared; only the parameter
// names in declaration order are known.
type Absent struct {
	Names []string
}

// NewAbsent creates an Absent source with normalized names
func NewAbsent(names ...string) Absent {
	normalized := make([]string, len(names))
	for i, n := range names {
		normalized[i] = NormalizeIdentifier(n)
	}
	return Absent{Names: normalized}
}

func (Absent) Kind() SourceKind { return SourceAbsent }

// Declared carries full structured parameter metadata
type Declared struct {
	Params *ParameterList
}

func (Declared) Kind() SourceKind { return SourceDeclared }

// ExplicitOverride is a text signature written by the author and used verbatim
type ExplicitOverride struct {
	Text string
}

func (ExplicitOverride) Kind() SourceKind { return SourceExplicitOverride }

// SuppressedExplicitly means the author opted out of a text signature
type SuppressedExplicitly struct{}

func (SuppressedExplicitly) Kind() SourceKind { return SourceSuppressed }
