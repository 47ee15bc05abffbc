package signature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/textsig/internal/models"
)

func posOnly(name string, def models.DefaultState) models.Parameter {
	return models.NewParameter(name, models.CategoryPositionalOnly, def)
}

func posOrKw(name string, def models.DefaultState) models.Parameter {
	return models.NewParameter(name, models.CategoryPositionalOrKeyword, def)
}

func kwOnly(name string, def models.DefaultState) models.Parameter {
	return models.NewParameter(name, models.CategoryKeywordOnly, def)
}

func varArgs(name string) models.Parameter {
	return models.NewParameter(name, models.CategoryVarPositional, models.NoDefault())
}

func varKwargs(name string) models.Parameter {
	return models.NewParameter(name, models.CategoryVarKeyword, models.NoDefault())
}

// (a, /, b = None, *, c = 5)
func slashStarList(t *testing.T) *models.ParameterList {
	t.Helper()
	list, err := models.NewParameterList(
		posOnly("a", models.NoDefault()),
		posOrKw("b", models.OpaqueDefault()),
		kwOnly("c", models.OpaqueDefault()),
	)
	require.NoError(t, err)
	return list
}

// (a, /, b = None, *args, c, d=5, **kwargs)
func variadicList(t *testing.T) *models.ParameterList {
	t.Helper()
	list, err := models.NewParameterList(
		posOnly("a", models.NoDefault()),
		posOrKw("b", models.OpaqueDefault()),
		varArgs("args"),
		kwOnly("c", models.NoDefault()),
		kwOnly("d", models.OpaqueDefault()),
		varKwargs("kwargs"),
	)
	require.NoError(t, err)
	return list
}

func TestRender_DeclaredScenarios(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		params   func(t *testing.T) *models.ParameterList
		expected string
	}{
		{"free function", models.RoleFreeFunction, slashStarList, "(a, /, b=..., *, c=...)"},
		{"instance method", models.RoleInstanceMethod, slashStarList, "($self, a, /, b=..., *, c=...)"},
		{"static method with variadics", models.RoleStaticMethod, variadicList, "(a, /, b=..., *args, c, d=..., **kwargs)"},
		{"instance method with variadics", models.RoleInstanceMethod, variadicList, "($self, a, /, b=..., *args, c, d=..., **kwargs)"},
		{"class method", models.RoleClassMethod, slashStarList, "($cls, a, /, b=..., *, c=...)"},
		{"module function", models.RoleModuleFunction, slashStarList, "($module, a, /, b=..., *, c=...)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RenderForRole(tt.role, models.Declared{Params: tt.params(t)})
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRender_AbsentScenarios(t *testing.T) {
	tests := []struct {
		role     models.Role
		expected string
	}{
		{models.RoleFreeFunction, "(a, b, c)"},
		{models.RoleModuleFunction, "($module, a, b, c)"},
		{models.RoleInstanceMethod, "($self, a, b, c)"},
		{models.RoleStaticMethod, "(a, b, c)"},
		{models.RoleClassMethod, "($cls, a, b, c)"},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			got, ok := RenderForRole(tt.role, models.NewAbsent("a", "b", "c"))
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRender_AbsentIsFlat(t *testing.T) {
	for _, role := range []models.Role{
		models.RoleFreeFunction, models.RoleModuleFunction, models.RoleInstanceMethod,
		models.RoleClassMethod, models.RoleStaticMethod,
	} {
		got, ok := RenderForRole(role, models.NewAbsent("args", "kwargs", "r#type"))
		require.True(t, ok)
		inner := strings.TrimSuffix(strings.TrimPrefix(got, "("), ")")
		assert.NotContains(t, inner, "/")
		assert.NotContains(t, inner, "*")
		assert.NotContains(t, inner, "=")
		assert.True(t, strings.HasSuffix(got, "args, kwargs, type)"), got)
	}
}

func TestRender_EmptyParameterList(t *testing.T) {
	empty := models.MustParameterList()

	got, ok := Render(models.ReceiverNone, models.Declared{Params: empty})
	require.True(t, ok)
	assert.Equal(t, "()", got)

	got, ok = Render(models.ReceiverNone, models.NewAbsent())
	require.True(t, ok)
	assert.Equal(t, "()", got)

	got, ok = Render(models.ReceiverInstance, models.Declared{Params: empty})
	require.True(t, ok)
	assert.Equal(t, "($self)", got)
}

func TestRender_PlainPositionalList(t *testing.T) {
	list := models.MustParameterList(
		posOrKw("x", models.NoDefault()),
		posOrKw("y", models.LiteralDefault("None")),
		posOrKw("z", models.OpaqueDefault()),
	)

	got, ok := Render(models.ReceiverNone, models.Declared{Params: list})
	require.True(t, ok)
	assert.Equal(t, "(x, y=None, z=...)", got)
}

func TestRender_PositionalOnlyMarker(t *testing.T) {
	t.Run("followed by keyword only", func(t *testing.T) {
		list := models.MustParameterList(posOnly("a", models.NoDefault()), kwOnly("k", models.NoDefault()))
		got, _ := Render(models.ReceiverNone, models.Declared{Params: list})
		assert.Equal(t, "(a, /, *, k)", got)
	})

	t.Run("followed by kwargs", func(t *testing.T) {
		list := models.MustParameterList(posOnly("a", models.NoDefault()), posOnly("b", models.OpaqueDefault()), varKwargs("kw"))
		got, _ := Render(models.ReceiverNone, models.Declared{Params: list})
		assert.Equal(t, "(a, b=..., /, **kw)", got)
		assert.Equal(t, 1, strings.Count(got, "/"))
	})

	t.Run("nothing follows", func(t *testing.T) {
		list := models.MustParameterList(posOnly("a", models.NoDefault()))
		got, _ := Render(models.ReceiverNone, models.Declared{Params: list})
		assert.Equal(t, "(a)", got)
	})

	t.Run("receiver does not count as positional only", func(t *testing.T) {
		list := models.MustParameterList(kwOnly("k", models.NoDefault()))
		got, _ := Render(models.ReceiverInstance, models.Declared{Params: list})
		assert.Equal(t, "($self, *, k)", got)
	})
}

func TestRender_KeywordOnlyMarkerExclusivity(t *testing.T) {
	withArgs := models.MustParameterList(varArgs("args"), kwOnly("k", models.NoDefault()))
	got, _ := Render(models.ReceiverNone, models.Declared{Params: withArgs})
	assert.Equal(t, "(*args, k)", got)

	bare := models.MustParameterList(kwOnly("k", models.NoDefault()))
	got, _ = Render(models.ReceiverNone, models.Declared{Params: bare})
	assert.Equal(t, "(*, k)", got)

	onlyArgs := models.MustParameterList(varArgs("args"))
	got, _ = Render(models.ReceiverNone, models.Declared{Params: onlyArgs})
	assert.Equal(t, "(*args)", got)
}

func TestRender_ReceiverFromParameterList(t *testing.T) {
	list := models.MustParameterList(
		models.NewReceiverParameter(models.ReceiverClass),
		posOrKw("a", models.NoDefault()),
	)

	got, _ := Render(models.ReceiverNone, models.Declared{Params: list})
	assert.Equal(t, "($cls, a)", got)

	// the calling convention wins over a receiver recorded in the list
	got, _ = Render(models.ReceiverInstance, models.Declared{Params: list})
	assert.Equal(t, "($self, a)", got)
}

func TestRender_OverrideAndSuppression(t *testing.T) {
	for _, text := range []string{"(a, b=None, *, c=42)", "($self, a)", "", "not even a signature"} {
		got, ok := Render(models.ReceiverInstance, models.ExplicitOverride{Text: text})
		require.True(t, ok)
		assert.Equal(t, text, got)
	}

	_, ok := Render(models.ReceiverInstance, models.SuppressedExplicitly{})
	assert.False(t, ok)

	_, ok = Render(models.ReceiverNone, nil)
	assert.False(t, ok)
}

func TestResolveSource_Precedence(t *testing.T) {
	override := "(a, b=None, *, c=42)"
	declared := slashStarList(t)

	tests := []struct {
		name     string
		input    Annotations
		expected models.SourceKind
	}{
		{"suppression beats everything", Annotations{Suppressed: true, Override: &override, Declared: declared, Names: []string{"a"}}, models.SourceSuppressed},
		{"suppression beats declared", Annotations{Suppressed: true, Declared: declared}, models.SourceSuppressed},
		{"override beats declared", Annotations{Override: &override, Declared: declared}, models.SourceExplicitOverride},
		{"declared beats names", Annotations{Declared: declared, Names: []string{"a", "b", "c"}}, models.SourceDeclared},
		{"names only", Annotations{Names: []string{"a", "b", "c"}}, models.SourceAbsent},
		{"nothing at all", Annotations{}, models.SourceAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := ResolveSource(tt.input)
			assert.Equal(t, tt.expected, src.Kind())
		})
	}
}

func TestResolveSource_SuppressedRendersNothing(t *testing.T) {
	override := "(x)"
	src := ResolveSource(Annotations{Suppressed: true, Override: &override, Declared: variadicList(t)})

	for _, role := range []models.Role{models.RoleFreeFunction, models.RoleInstanceMethod, models.RoleStaticMethod, models.RoleClassMethod} {
		_, ok := RenderForRole(role, src)
		assert.False(t, ok, role.String())
	}
}

func TestRender_Idempotent(t *testing.T) {
	src := models.Declared{Params: variadicList(t)}
	first, _ := Render(models.ReceiverInstance, src)
	second, _ := Render(models.ReceiverInstance, src)
	assert.Equal(t, first, second)
}
