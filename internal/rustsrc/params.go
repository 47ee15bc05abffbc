package rustsrc

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/toyz/textsig/internal/models"
)

// parameterNames lists the Python-visible parameter names of a Rust function:
// the receiver slot and Python<'py> tokens are not passed by callers.
func parameterNames(fn *sitter.Node, content []byte, role models.Role, passModule bool) []string {
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}

	var names []string
	hasSelf := false
	skipFirst := passModule || role == models.RoleClassMethod
	first := true

	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		switch child.Type() {
		case "self_parameter":
			hasSelf = true
			first = false
			continue
		case "parameter":
		default:
			continue
		}

		if first {
			first = false
			// an instance method without &self takes its receiver as the
			// first argument, e.g. slf: PyRef<'_, Self>
			if skipFirst || (role == models.RoleInstanceMethod && !hasSelf) {
				continue
			}
		}

		if isPythonToken(child, content) {
			continue
		}

		pattern := child.ChildByFieldName("pattern")
		if pattern == nil {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(pattern.Content(content), "mut "))
		names = append(names, models.NormalizeIdentifier(name))
	}

	return names
}

func isPythonToken(param *sitter.Node, content []byte) bool {
	typeNode := param.ChildByFieldName("type")
	if typeNode == nil {
		return false
	}
	typ := strings.TrimSpace(typeNode.Content(content))
	typ = strings.TrimPrefix(typ, "pyo3::")
	return typ == "Python" || strings.HasPrefix(typ, "Python<")
}
