package manifest

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
	"github.com/toyz/textsig/internal/signature"
)

func TestLoad_Example(t *testing.T) {
	callables, err := Load(filepath.Join("testdata", "example.textsig.yaml"))
	require.NoError(t, err)
	require.Len(t, callables, 4)

	fn := callables[0]
	assert.Equal(t, "my_function", fn.Name)
	assert.Equal(t, models.DocFragments{"Adds things.", "Returns the sum."}, fn.Doc)
	require.Equal(t, models.SourceDeclared, fn.Source.Kind())
	sig, ok := signature.RenderForRole(fn.Role, fn.Source)
	require.True(t, ok)
	assert.Equal(t, "(a, /, b=None, *args, c=..., **kwargs)", sig)
	assert.Equal(t, 3, fn.Location.Line)

	class := callables[1]
	assert.Equal(t, models.KindType, class.Kind)
	assert.Equal(t, "testdata/example.textsig.yaml:19", class.Location.String())
	assert.Equal(t, models.ExplicitOverride{Text: "(a, b=None, *, c=42)"}, class.Source)

	method := callables[2]
	assert.Equal(t, "method", method.Name)
	assert.Equal(t, "MyClass.method", method.QualifiedName())
	sig, ok = signature.RenderForRole(method.Role, method.Source)
	require.True(t, ok)
	assert.Equal(t, "($self, a, b)", sig)

	quiet := callables[3]
	assert.Equal(t, models.SourceSuppressed, quiet.Source.Kind())
	assert.Equal(t, models.RoleStaticMethod, quiet.Role)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("callables:\n  - name: f\n    signature: \"(a)\"\n"), "bad.textsig.yaml")
	require.Error(t, err)

	var syntaxErr *errors.SyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	assert.Equal(t, "bad.textsig.yaml", syntaxErr.Location().File)
}

func TestParse_EntryErrorsAreIndependent(t *testing.T) {
	doc := `
callables:
  - name: ok
    names: [x]
  - name: ""
  - name: bad_role
    role: sideways
  - name: bad_order
    parameters:
      - name: a
        category: keyword_only
      - name: b
        category: positional_only
  - name: receiver
    parameters:
      - name: self
        category: implicit_receiver
  - name: both
    names: [a]
    parameters:
      - name: a
  - name: bad_kind
    kind: module
`
	callables, err := Parse([]byte(doc), "m.textsig.yaml")
	require.Len(t, callables, 1)
	assert.Equal(t, "ok", callables[0].Name)

	var multi *errors.MultipleErrors
	require.True(t, stderrors.As(err, &multi))
	assert.Equal(t, 6, multi.Count())
	assert.True(t, multi.HasCode(errors.OrderingErrorCode))
	assert.True(t, multi.HasCode(errors.ValidationErrorCode))
	assert.Equal(t, 8, multi.Errors[2].Location().Line, "bad_order starts on line 8")
}

func TestParse_DuplicateNames(t *testing.T) {
	doc := `
callables:
  - name: f
    names: [a]
  - name: r#f
    names: [b]
  - name: f
    owner: C
    role: instance
`
	callables, err := Parse([]byte(doc), "dup.textsig.yaml")
	require.Len(t, callables, 2)
	assert.Equal(t, []string{"a"}, callables[0].Source.(models.Absent).Names)
	assert.Equal(t, "C.f", callables[1].QualifiedName())

	var multi *errors.MultipleErrors
	require.True(t, stderrors.As(err, &multi))
	require.Equal(t, 1, multi.Count())
	assert.Equal(t, 5, multi.Errors[0].Location().Line)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.textsig.yaml"))
	require.Error(t, err)

	var te errors.TextsigError
	require.True(t, stderrors.As(err, &te))
	assert.Equal(t, errors.FileSystemErrorCode, te.ErrorCode())
}

func TestIsManifest(t *testing.T) {
	assert.True(t, IsManifest("api/example.textsig.yaml"))
	assert.False(t, IsManifest("example.yaml"))
	assert.False(t, IsManifest("lib.rs"))
}
