// Package ast wraps tree-sitter parsing of JavaScript, TypeScript and TSX
// sources and provides byte-range edit splicing for writing changes back.
// Regions that no edit touches are reproduced byte-for-byte.
package ast

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Dialect selects the tree-sitter grammar for a source file.
type Dialect int

const (
	DialectJavaScript Dialect = iota // .js, .jsx, .mjs, .cjs (JSX included)
	DialectTypeScript                // .ts, .mts, .cts
	DialectTSX                       // .tsx
)

func (d Dialect) String() string {
	switch d {
	case DialectTypeScript:
		return "typescript"
	case DialectTSX:
		return "tsx"
	default:
		return "javascript"
	}
}

func (d Dialect) language() *sitter.Language {
	switch d {
	case DialectTypeScript:
		return typescript.GetLanguage()
	case DialectTSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// DialectForFile picks the grammar from the file extension.
func DialectForFile(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return DialectTypeScript
	case ".tsx":
		return DialectTSX
	default:
		return DialectJavaScript
	}
}

// ParseError reports the position of the first syntax error in a file.
type ParseError struct {
	Path    string
	Dialect Dialect
	Line    int // 1-based
	Column  int // 1-based
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid %s syntax at line %d, column %d", e.Path, e.Dialect, e.Line, e.Column)
}

// Tree is one parsed source file. It owns the tree-sitter tree and the
// original source bytes; callers must Close it when done.
type Tree struct {
	path string
	src  []byte
	tree *sitter.Tree
}

// Parse parses src with the grammar for d. It fails with *ParseError when the
// source is not syntactically valid.
func Parse(ctx context.Context, path string, src []byte, d Dialect) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(d.language())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		pt := firstErrorPoint(root)
		tree.Close()
		return nil, &ParseError{
			Path:    path,
			Dialect: d,
			Line:    int(pt.Row) + 1,
			Column:  int(pt.Column) + 1,
		}
	}
	return &Tree{path: path, src: src, tree: tree}, nil
}

// firstErrorPoint walks depth-first for the first ERROR or MISSING node.
func firstErrorPoint(node *sitter.Node) sitter.Point {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node.StartPoint()
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.HasError() || child.IsMissing() {
			return firstErrorPoint(child)
		}
	}
	return node.StartPoint()
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Path returns the path the tree was parsed from.
func (t *Tree) Path() string { return t.path }

// Root returns the root node of the parsed file.
func (t *Tree) Root() *sitter.Node { return t.tree.RootNode() }

// Source returns the original source bytes.
func (t *Tree) Source() []byte { return t.src }

// Text returns the source text covered by n.
func (t *Tree) Text(n *sitter.Node) string { return n.Content(t.src) }
