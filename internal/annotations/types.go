package annotations

import "fmt"

// AttributeKind identifies the pyo3 attributes this package understands
type AttributeKind int

const (
	UnknownAttribute AttributeKind = iota
	PyFunctionAttribute
	PyFnAttribute
	PyClassAttribute
	PyMethodsAttribute
	PyModuleAttribute
	PyO3Attribute
	StaticMethodAttribute
	ClassMethodAttribute
	NewAttribute
	GetterAttribute
	SetterAttribute
	DocAttribute
)

// String returns the string representation of the attribute kind
func (a AttributeKind) String() string {
	switch a {
	case PyFunctionAttribute:
		return "pyfunction"
	case PyFnAttribute:
		return "pyfn"
	case PyClassAttribute:
		return "pyclass"
	case PyMethodsAttribute:
		return "pymethods"
	case PyModuleAttribute:
		return "pymodule"
	case PyO3Attribute:
		return "pyo3"
	case StaticMethodAttribute:
		return "staticmethod"
	case ClassMethodAttribute:
		return "classmethod"
	case NewAttribute:
		return "new"
	case GetterAttribute:
		return "getter"
	case SetterAttribute:
		return "setter"
	case DocAttribute:
		return "doc"
	default:
		return "unknown"
	}
}

// ParseAttributeKind converts an attribute name to its kind
func ParseAttributeKind(s string) (AttributeKind, error) {
	switch s {
	case "pyfunction":
		return PyFunctionAttribute, nil
	case "pyfn":
		return PyFnAttribute, nil
	case "pyclass":
		return PyClassAttribute, nil
	case "pymethods":
		return PyMethodsAttribute, nil
	case "pymodule":
		return PyModuleAttribute, nil
	case "pyo3":
		return PyO3Attribute, nil
	case "staticmethod":
		return StaticMethodAttribute, nil
	case "classmethod":
		return ClassMethodAttribute, nil
	case "new":
		return NewAttribute, nil
	case "getter":
		return GetterAttribute, nil
	case "setter":
		return SetterAttribute, nil
	case "doc":
		return DocAttribute, nil
	default:
		return UnknownAttribute, fmt.Errorf("unknown attribute: %s", s)
	}
}

// ArgumentSpec describes one accepted key inside an attribute's argument list
type ArgumentSpec struct {
	Description string
	Ignored     bool // accepted but irrelevant to doc and signature synthesis
}

// AttributeSchema lists the keys an attribute accepts. A nil Arguments map
// accepts any key.
type AttributeSchema struct {
	Kind      AttributeKind
	Arguments map[string]ArgumentSpec
	Examples  []string
}

var callableArguments = map[string]ArgumentSpec{
	"signature":      {Description: "structured parameter list, e.g. signature = (a, /, b = None, *, c = 5)"},
	"text_signature": {Description: `explicit text signature string, or None to opt out`},
	"name":           {Description: "exposed Python name"},
	"pass_module":    {Description: "the function receives its module as first argument"},
	"crate":          {Ignored: true},
	"get":            {Ignored: true},
	"set":            {Ignored: true},
	"from_py_with":   {Ignored: true},
}

// schemas holds the built-in attribute schemas
var schemas = map[AttributeKind]AttributeSchema{
	PyFunctionAttribute: {
		Kind:      PyFunctionAttribute,
		Arguments: callableArguments,
		Examples: []string{
			"#[pyfunction]",
			"#[pyfunction(signature = (a, /, b = None, *, c = 5))]",
			"#[pyfunction(pass_module)]",
			"#[pyfunction(text_signature = None)]",
		},
	},
	PyFnAttribute: {
		Kind:      PyFnAttribute,
		Arguments: callableArguments,
		Examples:  []string{"#[pyfn(m, signature = (a, b=None, *, c=42))]"},
	},
	PyO3Attribute: {
		Kind:      PyO3Attribute,
		Arguments: callableArguments,
		Examples: []string{
			`#[pyo3(text_signature = "($self, a)")]`,
			"#[pyo3(signature = (a, /, b = None, *args, c, d=5, **kwargs))]",
		},
	},
	PyClassAttribute: {
		Kind:     PyClassAttribute,
		Examples: []string{"#[pyclass]", `#[pyclass(name = "Point", subclass)]`},
	},
}

// SchemaFor returns the schema for an attribute kind, if it has one
func SchemaFor(kind AttributeKind) (AttributeSchema, bool) {
	schema, ok := schemas[kind]
	return schema, ok
}
