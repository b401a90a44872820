package mutate

import (
	"fmt"

	"relaywire/internal/ast"

	sitter "github.com/smacker/go-tree-sitter"
)

// ImportSpec describes a binding that must be importable in the target file.
type ImportSpec struct {
	Module  string // module specifier, e.g. "react-relay"
	Name    string // exported symbol for named imports; ignored when Default
	Default bool
	Local   string // local name to bind when a new declaration is inserted
}

// EnsureImport guarantees spec is imported and returns the local name bound
// to it. When the file already imports the symbol from the module, the
// existing local name (including any alias) is reused and no edit is made;
// otherwise a new import declaration is inserted after the last existing one.
// Wrapping mutators call this first so they can reference a valid identifier.
func EnsureImport(t *ast.Tree, spec ImportSpec) (string, Result) {
	root := t.Root()
	var lastImport *sitter.Node

	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != ast.KindImport {
			continue
		}
		lastImport = stmt
		source := stmt.ChildByFieldName("source")
		if source == nil || t.StringValue(source) != spec.Module {
			continue
		}
		if local := existingLocal(t, stmt, spec); local != "" {
			return local, alreadyApplied("`" + local + "` already imported from \"" + spec.Module + "\"")
		}
	}

	stmt := importStatement(spec)
	if lastImport != nil {
		return spec.Local, applied(ast.Insert(lastImport.EndByte(), "\n"+stmt))
	}
	return spec.Local, applied(ast.Insert(headerEnd(t), stmt+"\n"))
}

// existingLocal returns the local name stmt binds for spec, or "".
func existingLocal(t *ast.Tree, stmt *sitter.Node, spec ImportSpec) string {
	var clause *sitter.Node
	for i := 0; i < int(stmt.NamedChildCount()); i++ {
		if stmt.NamedChild(i).Type() == ast.KindImportClause {
			clause = stmt.NamedChild(i)
			break
		}
	}
	if clause == nil {
		return ""
	}
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		part := clause.NamedChild(i)
		switch part.Type() {
		case ast.KindIdentifier:
			if spec.Default {
				return t.Text(part)
			}
		case ast.KindNamedImports:
			if spec.Default {
				continue
			}
			for j := 0; j < int(part.NamedChildCount()); j++ {
				specifier := part.NamedChild(j)
				if specifier.Type() != ast.KindImportSpecifier {
					continue
				}
				name := specifier.ChildByFieldName("name")
				if name == nil || t.Text(name) != spec.Name {
					continue
				}
				if alias := specifier.ChildByFieldName("alias"); alias != nil {
					return t.Text(alias)
				}
				return t.Text(name)
			}
		}
	}
	return ""
}

func importStatement(spec ImportSpec) string {
	if spec.Default {
		return fmt.Sprintf("import %s from %q;", spec.Local, spec.Module)
	}
	if spec.Local != spec.Name {
		return fmt.Sprintf("import { %s as %s } from %q;", spec.Name, spec.Local, spec.Module)
	}
	return fmt.Sprintf("import { %s } from %q;", spec.Name, spec.Module)
}

// headerEnd returns the byte offset after any shebang and leading string
// directives ("use client" and friends), where the first import belongs.
func headerEnd(t *ast.Tree) uint32 {
	root := t.Root()
	var end uint32
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() == ast.KindHashBang {
			end = lineEnd(t, stmt)
			continue
		}
		if stmt.Type() == ast.KindExpressionStatement {
			expr := stmt.NamedChild(0)
			if expr != nil && expr.Type() == ast.KindString {
				end = lineEnd(t, stmt)
				continue
			}
		}
		break
	}
	return end
}

func lineEnd(t *ast.Tree, n *sitter.Node) uint32 {
	src := t.Source()
	i := int(n.EndByte())
	for i < len(src) && src[i] != '\n' {
		i++
	}
	if i < len(src) {
		i++
	}
	return uint32(i)
}
