package annotations

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Attribute is one outer attribute: #[path], #[path(args)] or #[path = value]
type Attribute struct {
	Pos   lexer.Position
	Path  []string      `parser:"'#' '[' @Ident ( '::' @Ident )*"`
	Args  *ArgumentList `parser:"( @@"`
	Value *Value        `parser:"| '=' @@ )? ']'"`
}

// Name returns the last path segment, so pyo3::pyfunction and pyfunction match
func (a *Attribute) Name() string {
	if len(a.Path) == 0 {
		return ""
	}
	return a.Path[len(a.Path)-1]
}

// ArgumentList is the parenthesized argument list of an attribute
type ArgumentList struct {
	Args []*Argument `parser:"'(' ( @@ ','? )* ')'"`
}

// Argument is key or key = value
type Argument struct {
	Pos   lexer.Position
	Key   string `parser:"@Ident"`
	Value *Value `parser:"( '=' @@ )?"`
}

// Value is the right-hand side of an argument
type Value struct {
	Signature *SignatureList `parser:"  @@"`
	String    *string        `parser:"| @( String | RawString )"`
	Number    *string        `parser:"| @Number"`
	Path      []string       `parser:"| @Ident ( '::' @Ident )*"`
}

// IsNone reports whether the value is the bare identifier None
func (v *Value) IsNone() bool {
	return v != nil && len(v.Path) == 1 && v.Path[0] == "None"
}

// SignatureList is the body of signature = (...)
type SignatureList struct {
	Items []*SignatureItem `parser:"'(' ( @@ ','? )* ')'"`
}

// SignatureItem is a marker or a parameter inside a signature list
type SignatureItem struct {
	Pos           lexer.Position
	Slash         bool            `parser:"  @'/'"`
	VarKeyword    *string         `parser:"| '**' @Ident"`
	VarPositional *StarItem       `parser:"| @@"`
	Param         *SignatureParam `parser:"| @@"`
}

// StarItem is either a bare * or *args
type StarItem struct {
	Star bool    `parser:"@'*'"`
	Name *string `parser:"@Ident?"`
}

// SignatureParam is name or name = default
type SignatureParam struct {
	Name    string      `parser:"@Ident"`
	Default *Expression `parser:"( '=' @@ )?"`
}

// Expression is a default value expression, kept as a balanced token run.
// Its text is never interpreted.
type Expression struct {
	Terms []*Term `parser:"@@+"`
}

// Term is an atom or a bracketed group
type Term struct {
	Group *Group `parser:"  @@"`
	Atom  string `parser:"| @( Ident | String | RawString | Char | Number | Operator | '::' | '*' | '**' | '/' | '!' )"`
}

// Group is a bracketed token run; commas inside do not end the expression
type Group struct {
	Open  string       `parser:"@( '(' | '[' | '{' )"`
	Items []*GroupItem `parser:"@@*"`
	Close string       `parser:"@( ')' | ']' | '}' )"`
}

// GroupItem is anything allowed inside a group
type GroupItem struct {
	Term   *Term `parser:"  @@"`
	Comma  bool  `parser:"| @','"`
	Equals bool  `parser:"| @'='"`
}

var attributeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "RawString", Pattern: `r(?:"(?s:.)*?"|#"(?s:.)*?"#|##"(?s:.)*?"##|###"(?s:.)*?"###)`},
	{Name: "String", Pattern: `"(?:\\(?s:.)|[^"\\])*"`},
	{Name: "Char", Pattern: `'(?:\\.|[^'\\])'`},
	{Name: "Ident", Pattern: `(?:r#)?[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9][0-9a-zA-Z_]*(?:\.[0-9][0-9a-zA-Z_]*)?`},
	{Name: "DoubleStar", Pattern: `\*\*`},
	{Name: "PathSep", Pattern: `::`},
	{Name: "Punct", Pattern: `[#!\[\](){},=/*]`},
	{Name: "Operator", Pattern: `[-+.&|<>%^~?@$;:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var attributeParser = participle.MustBuild[Attribute](
	participle.Lexer(attributeLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
