package mutate

import (
	"relaywire/internal/ast"
	"relaywire/internal/match"

	sitter "github.com/smacker/go-tree-sitter"
)

// UpsertArrayElement ensures elem appears in the array-valued property prop
// of the object literal obj, creating the property when it does not exist.
// An element is considered present when it reduces to the same binding name
// (`relay` matches both `relay` and `relay()`), so the same plugin can never
// be inserted twice under a different call shape.
func UpsertArrayElement(t *ast.Tree, obj *sitter.Node, prop, elem string) (Result, error) {
	arr, err := arrayProperty(t, obj, prop)
	if err != nil {
		return Result{}, err
	}
	if arr == nil {
		return UpsertProperty(t, obj, prop, "["+elem+"]"), nil
	}

	var last *sitter.Node
	for i := 0; i < int(arr.NamedChildCount()); i++ {
		el := arr.NamedChild(i)
		if el.Type() == "comment" {
			continue
		}
		if t.SameReference(el, elem) {
			return alreadyApplied("`" + ast.BaseName(elem) + "` already in `" + prop + "`"), nil
		}
		last = el
	}

	if last == nil {
		return applied(insertIntoEmpty(t, arr, elem)), nil
	}
	if indent, ownLine := t.LineIndent(last); ownLine {
		return applied(ast.Insert(last.EndByte(), ",\n"+indent+elem)), nil
	}
	return applied(ast.Insert(last.EndByte(), ", "+elem)), nil
}

// arrayProperty finds the array literal bound to prop on obj. A nil result
// with nil error means the property does not exist yet; a property bound to
// anything other than an array is an unsupported shape.
func arrayProperty(t *ast.Tree, obj *sitter.Node, prop string) (*sitter.Node, error) {
	for i := 0; i < int(obj.NamedChildCount()); i++ {
		child := obj.NamedChild(i)
		if t.PropertyKey(child) != prop || child.Type() != ast.KindPair {
			continue
		}
		value := ast.Unwrap(child.ChildByFieldName("value"))
		if value == nil || value.Type() != ast.KindArray {
			got := "nothing"
			if value != nil {
				got = value.Type()
			}
			return nil, &match.UnsupportedShapeError{
				Path: t.Path(),
				Want: "an array literal bound to `" + prop + "`",
				Got:  got,
			}
		}
		return value, nil
	}
	return nil, nil
}
