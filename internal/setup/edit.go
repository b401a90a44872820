// Package setup builds the ordered list of Relay integration tasks for one
// project: toolchain configuration edits, the root JSX wrap, and the
// generated scaffold files. Every task is idempotent — re-running against its
// own output reports Skipped and changes nothing.
package setup

import (
	"context"

	"relaywire/internal/ast"
	"relaywire/internal/fsio"
	"relaywire/internal/mutate"
	"relaywire/internal/project"
	"relaywire/internal/task"
)

// editFile runs one parse-mutate-reprint cycle against loc. The file is
// written only when fn reports an applied mutation with all edits computed;
// any matcher or mutator error leaves the file untouched.
func editFile(files fsio.Access, loc project.Location, fn func(t *ast.Tree) (mutate.Result, error)) task.Outcome {
	src, err := files.Read(loc.Abs)
	if err != nil {
		return task.Failed(err)
	}

	tree, err := ast.Parse(context.Background(), loc.Rel, src, ast.DialectForFile(loc.Abs))
	if err != nil {
		return task.Failed(err)
	}
	defer tree.Close()

	res, err := fn(tree)
	if err != nil {
		return task.Failed(err)
	}
	if !res.Applied {
		return task.Skipped(res.Reason)
	}

	out, err := ast.Apply(src, res.Edits)
	if err != nil {
		return task.Failed(err)
	}
	if err := files.Write(loc.Abs, out); err != nil {
		return task.Failed(err)
	}
	return task.Succeeded()
}
