package match

import (
	"fmt"

	"relaywire/internal/ast"

	sitter "github.com/smacker/go-tree-sitter"
)

// DefaultExportCall locates the object literal passed as the first argument
// of a default-exported factory call, e.g. the `{...}` in
// `export default defineConfig({...})`.
func DefaultExportCall(t *ast.Tree, callee string) (*sitter.Node, error) {
	want := fmt.Sprintf("`export default %s({...})`", callee)

	root := t.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != ast.KindExport {
			continue
		}
		value := ast.Unwrap(defaultExportValue(stmt))
		if value == nil {
			continue
		}
		if value.Type() != ast.KindCall {
			return nil, &UnsupportedShapeError{Path: t.Path(), Want: want, Got: value.Type()}
		}
		fn := value.ChildByFieldName("function")
		if fn == nil || t.Text(fn) != callee {
			got := "a call to something else"
			if fn != nil {
				got = fmt.Sprintf("a call to `%s`", t.Text(fn))
			}
			return nil, &UnsupportedShapeError{Path: t.Path(), Want: want, Got: got}
		}
		args := value.ChildByFieldName("arguments")
		if args == nil || args.NamedChildCount() == 0 {
			return nil, &UnsupportedShapeError{Path: t.Path(), Want: want, Got: fmt.Sprintf("`%s()` with no arguments", callee)}
		}
		first := ast.Unwrap(args.NamedChild(0))
		if first == nil || first.Type() != ast.KindObject {
			got := "nothing"
			if first != nil {
				got = fmt.Sprintf("%s as first argument", first.Type())
			}
			return nil, &UnsupportedShapeError{Path: t.Path(), Want: want, Got: got}
		}
		return first, nil
	}
	return nil, &NotFoundError{Path: t.Path(), Want: want}
}
