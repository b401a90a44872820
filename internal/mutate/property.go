package mutate

import (
	"strings"

	"relaywire/internal/ast"

	sitter "github.com/smacker/go-tree-sitter"
)

// UpsertProperty appends `name: value` to the object literal obj unless a
// property with that key already exists. Presence of the key alone is the
// idempotency signal; an existing value is never compared or overwritten.
// Existing properties keep their order and formatting.
func UpsertProperty(t *ast.Tree, obj *sitter.Node, name, value string) Result {
	last := lastProperty(t, obj)

	for i := 0; i < int(obj.NamedChildCount()); i++ {
		if t.PropertyKey(obj.NamedChild(i)) == name {
			return alreadyApplied("property `" + name + "` already present")
		}
	}

	entry := name + ": " + value
	if last == nil {
		return applied(insertIntoEmpty(t, obj, entry))
	}
	if indent, ownLine := t.LineIndent(last); ownLine {
		return applied(ast.Insert(last.EndByte(), ",\n"+indent+entry))
	}
	return applied(ast.Insert(last.EndByte(), ", "+entry))
}

// lastProperty returns the last property node of an object literal, ignoring
// interleaved comments.
func lastProperty(t *ast.Tree, obj *sitter.Node) *sitter.Node {
	var last *sitter.Node
	for i := 0; i < int(obj.NamedChildCount()); i++ {
		child := obj.NamedChild(i)
		switch child.Type() {
		case ast.KindPair, ast.KindShorthandProperty, ast.KindSpread, "method_definition":
			last = child
		}
	}
	return last
}

// insertIntoEmpty places the first entry inside an empty object or array
// literal, keeping single-line literals on one line.
func insertIntoEmpty(t *ast.Tree, literal *sitter.Node, entry string) ast.Edit {
	text := t.Text(literal)
	if strings.ContainsRune(text, '\n') {
		indent := t.IndentOfLine(literal)
		return ast.Insert(literal.StartByte()+1, "\n"+indent+"  "+entry)
	}
	if literal.Type() == ast.KindArray {
		return ast.Insert(literal.StartByte()+1, entry)
	}
	return ast.Insert(literal.StartByte()+1, " "+entry+" ")
}
