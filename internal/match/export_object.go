package match

import (
	"relaywire/internal/ast"

	sitter "github.com/smacker/go-tree-sitter"
)

const wantExportedObject = "an exported configuration object (`export default {...}` or `module.exports = {...}`)"

// ExportedObject locates the object literal a module exports as its
// configuration. Both `export default X` and `module.exports = X` are
// recognized; when X is an identifier, one hop to a top-level `const X =
// {...}` binding is resolved. Anything else is an unsupported shape.
func ExportedObject(t *ast.Tree) (*sitter.Node, error) {
	root := t.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		var value *sitter.Node

		switch stmt.Type() {
		case ast.KindExport:
			value = defaultExportValue(stmt)
		case ast.KindExpressionStatement:
			value = moduleExportsValue(t, stmt)
		}
		if value == nil {
			continue
		}
		return resolveObject(t, value)
	}
	return nil, &NotFoundError{Path: t.Path(), Want: wantExportedObject}
}

// defaultExportValue returns the expression of `export default <expr>`, nil
// for any other export statement.
func defaultExportValue(stmt *sitter.Node) *sitter.Node {
	hasDefault := false
	for i := 0; i < int(stmt.ChildCount()); i++ {
		if stmt.Child(i).Type() == "default" {
			hasDefault = true
			break
		}
	}
	if !hasDefault {
		return nil
	}
	if value := stmt.ChildByFieldName("value"); value != nil {
		return value
	}
	return stmt.ChildByFieldName("declaration")
}

// moduleExportsValue returns the right-hand side of `module.exports = <expr>`.
func moduleExportsValue(t *ast.Tree, stmt *sitter.Node) *sitter.Node {
	expr := ast.Unwrap(stmt.NamedChild(0))
	if expr == nil || expr.Type() != ast.KindAssignment {
		return nil
	}
	left := expr.ChildByFieldName("left")
	if left == nil || left.Type() != ast.KindMember || t.Text(left) != "module.exports" {
		return nil
	}
	return expr.ChildByFieldName("right")
}

// resolveObject reduces an exported value to an object literal, following at
// most one identifier binding. A second hop or any other construct fails.
func resolveObject(t *ast.Tree, value *sitter.Node) (*sitter.Node, error) {
	value = ast.Unwrap(value)
	if value == nil {
		return nil, &UnsupportedShapeError{Path: t.Path(), Want: wantExportedObject, Got: "empty expression"}
	}
	switch value.Type() {
	case ast.KindObject:
		return value, nil
	case ast.KindIdentifier:
		bound := topLevelBinding(t, t.Text(value))
		if bound == nil {
			return nil, &UnsupportedShapeError{
				Path: t.Path(),
				Want: wantExportedObject,
				Got:  "identifier `" + t.Text(value) + "` with no top-level object binding",
			}
		}
		bound = ast.Unwrap(bound)
		if bound == nil || bound.Type() != ast.KindObject {
			got := "nothing"
			if bound != nil {
				got = bound.Type() + " (only one binding hop is resolved)"
			}
			return nil, &UnsupportedShapeError{Path: t.Path(), Want: wantExportedObject, Got: got}
		}
		return bound, nil
	}
	return nil, &UnsupportedShapeError{Path: t.Path(), Want: wantExportedObject, Got: value.Type()}
}

// topLevelBinding finds the initializer of a top-level `const/let/var name = X`
// declaration, including ones nested in an export statement.
func topLevelBinding(t *ast.Tree, name string) *sitter.Node {
	root := t.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() == ast.KindExport {
			if decl := stmt.ChildByFieldName("declaration"); decl != nil {
				stmt = decl
			}
		}
		switch stmt.Type() {
		case ast.KindLexicalDeclaration, ast.KindVariableDeclaration:
		default:
			continue
		}
		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			declarator := stmt.NamedChild(j)
			if declarator.Type() != ast.KindVariableDeclarator {
				continue
			}
			nameNode := declarator.ChildByFieldName("name")
			if nameNode != nil && t.Text(nameNode) == name {
				return declarator.ChildByFieldName("value")
			}
		}
	}
	return nil
}
