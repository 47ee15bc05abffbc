package models

import (
	"fmt"

	"github.com/toyz/textsig/internal/errors"
)

// Role is how a callable is bound when exposed to Python
type Role int

const (
	RoleFreeFunction Role = iota
	RoleModuleFunction
	RoleInstanceMethod
	RoleClassMethod
	RoleStaticMethod
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleFreeFunction:
		return "free"
	case RoleModuleFunction:
		return "module"
	case RoleInstanceMethod:
		return "instance"
	case RoleClassMethod:
		return "class"
	case RoleStaticMethod:
		return "static"
	default:
		return "unknown"
	}
}

// ParseRole converts a string to a Role
func ParseRole(s string) (Role, error) {
	switch s {
	case "free", "function", "":
		return RoleFreeFunction, nil
	case "module", "pass_module":
		return RoleModuleFunction, nil
	case "instance", "method":
		return RoleInstanceMethod, nil
	case "class", "classmethod":
		return RoleClassMethod, nil
	case "static", "staticmethod":
		return RoleStaticMethod, nil
	default:
		return 0, fmt.Errorf("unknown role: %s", s)
	}
}

// CallableKind separates plain callables from type objects
type CallableKind int

const (
	KindFunction CallableKind = iota
	KindType
)

// String returns the string representation of the kind
func (k CallableKind) String() string {
	if k == KindType {
		return "type"
	}
	return "function"
}

// DocFragments are raw documentation lines in declaration order
type DocFragments []string

// Callable is the declaration-time record for one exposed callable or type
type Callable struct {
	Name     string // exposed name, already normalized
	Owner    string // owning class for methods, empty otherwise
	Kind     CallableKind
	Role     Role
	Source   SignatureSource
	Doc      DocFragments
	Location errors.SourceLocation
}

// QualifiedName returns Owner.Name for methods and Name otherwise
func (c Callable) QualifiedName() string {
	if c.Owner == "" {
		return c.Name
	}
	return c.Owner + "." + c.Name
}

// Metadata is the synthesized introspection data attached to a callable
type Metadata struct {
	Name          string                `json:"name"`
	QualifiedName string                `json:"qualified_name"`
	Kind          string                `json:"kind"`
	Role          string                `json:"role,omitempty"`
	Doc           *string               `json:"doc"`
	TextSignature *string               `json:"text_signature"`
	InternalDoc   *string               `json:"internal_doc,omitempty"`
	Location      errors.SourceLocation `json:"-"`
}

// DocText returns the doc string and whether one exists
func (m Metadata) DocText() (string, bool) {
	if m.Doc == nil {
		return "", false
	}
	return *m.Doc, true
}

// Signature returns the text signature and whether one exists
func (m Metadata) Signature() (string, bool) {
	if m.TextSignature == nil {
		return "", false
	}
	return *m.TextSignature, true
}
