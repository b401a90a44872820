package match

import (
	"fmt"

	"relaywire/internal/ast"

	sitter "github.com/smacker/go-tree-sitter"
)

// JSXMode selects which host shape the JSX matcher looks for. The mode is
// chosen by the task, never auto-detected.
type JSXMode int

const (
	// FirstReturn matches the JSX operand of the textually first return
	// statement anywhere in the file.
	FirstReturn JSXMode = iota
	// RenderCall matches the JSX passed as the first argument of a call to a
	// method named by callee (e.g. `root.render(<App/>)`).
	RenderCall
)

// JSXHost returns the first JSX element matching mode, in a single top-down
// depth-first traversal. Later or nested candidates are never considered once
// one is accepted; only one anchor per file is ever mutated.
func JSXHost(t *ast.Tree, mode JSXMode, callee string) (*sitter.Node, error) {
	var found *sitter.Node

	var walk func(n *sitter.Node) bool
	walk = func(n *sitter.Node) bool {
		if candidate := jsxCandidate(t, n, mode, callee); candidate != nil {
			found = candidate
			return true
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if walk(n.NamedChild(i)) {
				return true
			}
		}
		return false
	}
	walk(t.Root())

	if found == nil {
		return nil, &NotFoundError{Path: t.Path(), Want: jsxWant(mode, callee)}
	}
	return found, nil
}

func jsxWant(mode JSXMode, callee string) string {
	if mode == RenderCall {
		return fmt.Sprintf("a JSX element passed to a `.%s(...)` call", callee)
	}
	return "a JSX element returned from a component"
}

func jsxCandidate(t *ast.Tree, n *sitter.Node, mode JSXMode, callee string) *sitter.Node {
	switch mode {
	case FirstReturn:
		if n.Type() != ast.KindReturn {
			return nil
		}
		operand := ast.Unwrap(n.NamedChild(0))
		if ast.IsJSX(operand) {
			return operand
		}
	case RenderCall:
		if n.Type() != ast.KindCall {
			return nil
		}
		fn := n.ChildByFieldName("function")
		if fn == nil || fn.Type() != ast.KindMember {
			return nil
		}
		prop := fn.ChildByFieldName("property")
		if prop == nil || t.Text(prop) != callee {
			return nil
		}
		args := n.ChildByFieldName("arguments")
		if args == nil || args.NamedChildCount() == 0 {
			return nil
		}
		arg := ast.Unwrap(args.NamedChild(0))
		if ast.IsJSX(arg) {
			return arg
		}
	}
	return nil
}
