// Package rustsrc finds pyo3-exposed callables and classes in Rust source
// files and turns their attributes and doc comments into Callable records.
package rustsrc

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/toyz/textsig/internal/annotations"
	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
	"github.com/toyz/textsig/internal/signature"
)

// DefaultMaxFileSize is the largest source file Extract accepts by default
const DefaultMaxFileSize = 10 * 1024 * 1024

// Option configures an Extractor
type Option func(*Extractor)

// WithMaxFileSize sets the largest file, in bytes, the extractor will parse
func WithMaxFileSize(bytes int64) Option {
	return func(e *Extractor) {
		if bytes > 0 {
			e.maxFileSize = bytes
		}
	}
}

// WithTypes controls whether #[pyclass] items are reported as type records
func WithTypes(include bool) Option {
	return func(e *Extractor) {
		e.includeTypes = include
	}
}

// Extractor parses Rust source with tree-sitter. It holds no per-file state
// and is safe for concurrent use.
type Extractor struct {
	maxFileSize  int64
	includeTypes bool
}

// NewExtractor creates an extractor with the given options applied
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		maxFileSize:  DefaultMaxFileSize,
		includeTypes: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result holds the callables found in one file and the declarations that
// could not be turned into callables
type Result struct {
	File      string
	Callables []models.Callable
	Errors    *errors.MultipleErrors
}

// Extract parses content and collects every exposed callable. Declaration
// errors are collected in the result and only drop the offending item; the
// returned error is reserved for failures that affect the whole file.
func (e *Extractor) Extract(ctx context.Context, content []byte, file string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapExtractionError(file, err)
	}
	if int64(len(content)) > e.maxFileSize {
		return nil, errors.WrapExtractionError(file,
			fmt.Errorf("size %d exceeds limit %d", len(content), e.maxFileSize))
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(rust.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, errors.WrapExtractionError(file, err)
	}
	defer tree.Close()

	w := &walker{
		extractor: e,
		file:      file,
		content:   content,
		classes:   make(map[string]string),
		result: &Result{
			File:   file,
			Errors: errors.NewMultipleErrors(),
		},
	}
	w.items(tree.RootNode())
	w.resolveOwners()

	return w.result, nil
}

type walker struct {
	extractor *Extractor
	file      string
	content   []byte
	result    *Result

	// rust type name -> exposed class name
	classes map[string]string
}

// items visits every item in a source file, module body, impl body or block
func (w *walker) items(container *sitter.Node) {
	for i := 0; i < int(container.NamedChildCount()); i++ {
		child := container.NamedChild(i)
		switch child.Type() {
		case "function_item":
			w.function(child)
		case "struct_item", "enum_item":
			w.class(child)
		case "impl_item":
			w.impl(child)
		case "mod_item":
			if body := child.ChildByFieldName("body"); body != nil {
				w.items(body)
			}
		}
	}
}

func (w *walker) function(node *sitter.Node) {
	// nested items: #[pyfn] inside #[pymodule] bodies, and items declared
	// inside ordinary function bodies
	if body := node.ChildByFieldName("body"); body != nil {
		w.items(body)
	}

	decl, ok := w.declaration(node)
	if !ok {
		return
	}
	if kind, exposed := decl.Exposed(); !exposed || kind == annotations.PyClassAttribute {
		return
	}

	role := models.RoleFreeFunction
	if decl.PassModule {
		role = models.RoleModuleFunction
	}

	w.emit(node, decl, models.Callable{
		Name: w.exposedName(node, decl),
		Kind: models.KindFunction,
		Role: role,
	}, parameterNames(node, w.content, role, decl.PassModule))
}

func (w *walker) class(node *sitter.Node) {
	decl, ok := w.declaration(node)
	if !ok {
		return
	}
	if kind, exposed := decl.Exposed(); !exposed || kind != annotations.PyClassAttribute {
		return
	}

	name := w.exposedName(node, decl)
	w.classes[models.NormalizeIdentifier(w.nodeName(node))] = name

	if !w.extractor.includeTypes {
		return
	}
	w.emit(node, decl, models.Callable{
		Name: name,
		Kind: models.KindType,
		Role: models.RoleFreeFunction,
	}, nil)
}

func (w *walker) impl(node *sitter.Node) {
	decl, ok := w.declaration(node)
	if !ok || !decl.Has(annotations.PyMethodsAttribute) {
		return
	}

	owner := ""
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		owner = typeNode.Content(w.content)
		if i := strings.Index(owner, "<"); i >= 0 {
			owner = owner[:i]
		}
		owner = models.NormalizeIdentifier(owner)
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "function_item" {
			w.method(child, owner)
		}
	}
}

func (w *walker) method(node *sitter.Node, owner string) {
	decl, ok := w.declaration(node)
	if !ok {
		return
	}
	if decl.Has(annotations.NewAttribute) || decl.Has(annotations.GetterAttribute) || decl.Has(annotations.SetterAttribute) {
		return
	}

	role := models.RoleInstanceMethod
	switch {
	case decl.Has(annotations.StaticMethodAttribute):
		role = models.RoleStaticMethod
	case decl.Has(annotations.ClassMethodAttribute):
		role = models.RoleClassMethod
	}

	w.emit(node, decl, models.Callable{
		Name:  w.exposedName(node, decl),
		Owner: owner,
		Kind:  models.KindFunction,
		Role:  role,
	}, parameterNames(node, w.content, role, false))
}

// emit finishes a callable from its declaration and appends it
func (w *walker) emit(node *sitter.Node, decl *annotations.Declaration, c models.Callable, names []string) {
	annots := decl.Signature
	annots.Names = names

	c.Source = signature.ResolveSource(annots)
	c.Doc = decl.Doc
	c.Location = w.location(node)
	if !decl.Location.IsEmpty() {
		c.Location = decl.Location
	}
	w.result.Callables = append(w.result.Callables, c)
}

// declaration parses the attributes and doc comments attached to node.
// A false return means the item is skipped; any error has been recorded.
func (w *walker) declaration(node *sitter.Node) (*annotations.Declaration, bool) {
	decl, err := annotations.ParseDeclaration(w.fragments(node))
	if err != nil {
		w.fail(err, node)
		return nil, false
	}
	return decl, true
}

// fragments collects the attributes and comments directly preceding node, in
// source order
func (w *walker) fragments(node *sitter.Node) []annotations.Fragment {
	var collected []annotations.Fragment
	for prev := node.PrevNamedSibling(); prev != nil; prev = prev.PrevNamedSibling() {
		switch prev.Type() {
		case "attribute_item", "line_comment", "block_comment":
			collected = append(collected, annotations.Fragment{
				Text:     prev.Content(w.content),
				Location: w.location(prev),
			})
			continue
		}
		break
	}

	for i, j := 0, len(collected)-1; i < j; i, j = i+1, j-1 {
		collected[i], collected[j] = collected[j], collected[i]
	}
	return collected
}

func (w *walker) fail(err error, node *sitter.Node) {
	te := errors.AsTextsigError(err)
	if te.Location().IsEmpty() {
		te = errors.WrapExtractionError(w.file, err).WithLocation(w.location(node))
	}
	w.result.Errors.Add(te)
}

func (w *walker) exposedName(node *sitter.Node, decl *annotations.Declaration) string {
	if decl.Name != "" {
		return decl.Name
	}
	return models.NormalizeIdentifier(w.nodeName(node))
}

func (w *walker) nodeName(node *sitter.Node) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nameNode.Content(w.content)
	}
	return ""
}

func (w *walker) location(node *sitter.Node) errors.SourceLocation {
	start := node.StartPoint()
	return errors.SourceLocation{
		File:   w.file,
		Line:   int(start.Row) + 1,
		Column: int(start.Column) + 1,
	}
}

// resolveOwners swaps rust type names for exposed class names once every
// #[pyclass] in the file has been seen
func (w *walker) resolveOwners() {
	for i := range w.result.Callables {
		c := &w.result.Callables[i]
		if exposed, ok := w.classes[c.Owner]; ok {
			c.Owner = exposed
		}
	}
}
