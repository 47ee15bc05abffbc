package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/textsig/internal/models"
)

func TestAggregate(t *testing.T) {
	_, ok := Aggregate(nil)
	assert.False(t, ok)

	_, ok = Aggregate(models.DocFragments{})
	assert.False(t, ok)

	doc, ok := Aggregate(models.DocFragments{"l1", "l2", "l3"})
	require.True(t, ok)
	assert.Equal(t, "l1\nl2\nl3", doc)

	// an explicit empty line is still a doc
	doc, ok = Aggregate(models.DocFragments{""})
	require.True(t, ok)
	assert.Equal(t, "", doc)
}

func TestAggregate_FragmentsAddedLater(t *testing.T) {
	fragments := models.DocFragments{"docs line1", "docs line2"}
	fragments = append(fragments, "docs line3")

	doc, ok := Aggregate(fragments)
	require.True(t, ok)
	assert.Equal(t, "docs line1\ndocs line2\ndocs line3", doc)
}

func TestComposeInternalDoc(t *testing.T) {
	tests := []struct {
		name     string
		sig      string
		hasSig   bool
		doc      string
		hasDoc   bool
		expected string
		ok       bool
	}{
		{"signature and doc", "(a, b=None, *, c=42)", true, "docs line1\ndocs line2", true, "MyClass(a, b=None, *, c=42)\n--\n\ndocs line1\ndocs line2", true},
		{"signature only", "(a)", true, "", false, "MyClass(a)\n--\n\n", true},
		{"doc only", "", false, "docs", true, "docs", true},
		{"nothing", "", false, "", false, "", false},
		{"unrecoverable signature", "a, b", true, "docs", true, "docs", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComposeInternalDoc("mod.MyClass", tt.sig, tt.hasSig, tt.doc, tt.hasDoc)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSplitInternalDoc_RoundTrip(t *testing.T) {
	internal, ok := ComposeInternalDoc("MyClass", "(a, b=None, *, c=42)", true, "docs line1\ndocs line2\ndocs line3", true)
	require.True(t, ok)

	split := SplitInternalDoc("MyClass", internal)
	assert.True(t, split.HasSignature)
	assert.Equal(t, "(a, b=None, *, c=42)", split.TextSignature)
	assert.True(t, split.HasDoc)
	assert.Equal(t, "docs line1\ndocs line2\ndocs line3", split.Doc)
}

func TestSplitInternalDoc_SignatureWithoutDoc(t *testing.T) {
	internal, _ := ComposeInternalDoc("MyClass", "(a)", true, "", false)

	split := SplitInternalDoc("MyClass", internal)
	assert.True(t, split.HasSignature)
	assert.Equal(t, "(a)", split.TextSignature)
	assert.False(t, split.HasDoc)
}

func TestSplitInternalDoc_NoSignature(t *testing.T) {
	tests := []struct {
		name     string
		internal string
	}{
		{"plain doc", "docs line1\ndocs line2"},
		{"wrong name", "Other(a)\n--\n\ndocs"},
		{"blank line before marker", "MyClass(a\n\n)\n--\n\ndocs"},
		{"no marker", "MyClass(a) makes things"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := SplitInternalDoc("MyClass", tt.internal)
			assert.False(t, split.HasSignature)
			assert.Equal(t, tt.internal, split.Doc)
			assert.True(t, split.HasDoc)
		})
	}

	empty := SplitInternalDoc("MyClass", "")
	assert.False(t, empty.HasDoc)
	assert.False(t, empty.HasSignature)
}
