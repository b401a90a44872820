package mutate

import (
	"fmt"

	"relaywire/internal/ast"
	"relaywire/internal/match"

	sitter "github.com/smacker/go-tree-sitter"
)

// WrapJSX wraps the anchor element in a provider element carrying a single
// attribute, e.g. `<App/>` becomes
// `<RelayEnvironmentProvider environment={RelayEnvironment}><App/></RelayEnvironmentProvider>`.
// The provider and attribute identifiers must already be valid in the file
// (see EnsureImport). When the anchor's own tag already is the provider, the
// wrap was performed earlier and the mutation is skipped.
func WrapJSX(t *ast.Tree, anchor *sitter.Node, provider, attr, argExpr string) (Result, error) {
	if !ast.IsJSX(anchor) {
		return Result{}, &match.UnsupportedShapeError{
			Path: t.Path(),
			Want: "a JSX element",
			Got:  anchor.Type(),
		}
	}
	if t.JSXTagName(anchor) == provider {
		return alreadyApplied("already wrapped in `" + provider + "`"), nil
	}
	open := fmt.Sprintf("<%s %s={%s}>", provider, attr, argExpr)
	return applied(
		ast.Insert(anchor.StartByte(), open),
		ast.Insert(anchor.EndByte(), "</"+provider+">"),
	), nil
}
