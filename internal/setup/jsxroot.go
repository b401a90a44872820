package setup

import (
	"path"
	"path/filepath"
	"strings"

	"relaywire/internal/ast"
	"relaywire/internal/fsio"
	"relaywire/internal/match"
	"relaywire/internal/mutate"
	"relaywire/internal/project"
	"relaywire/internal/task"
)

// WrapRoot wraps the application's root JSX in RelayEnvironmentProvider. The
// anchor is the JSX passed to the render call for bundler projects, or the
// first returned JSX for Next (the custom _app component renders via return).
// Imports are ensured first so the new element references valid identifiers;
// when the root is already wrapped the whole task is a no-op, including the
// imports, so re-runs leave the file byte-identical.
func WrapRoot(c *project.Context, files fsio.Access) task.Task {
	return task.Task{
		Label: "Wrap root JSX in RelayEnvironmentProvider (" + c.MainEntry.Rel + ")",
		Run: func(c *project.Context) task.Outcome {
			return editFile(files, c.MainEntry, func(t *ast.Tree) (mutate.Result, error) {
				mode := match.RenderCall
				if c.Toolchain == project.ToolchainNext {
					mode = match.FirstReturn
				}
				anchor, err := match.JSXHost(t, mode, "render")
				if err != nil {
					return mutate.Result{}, err
				}

				provider, providerImport := mutate.EnsureImport(t, mutate.ImportSpec{
					Module: "react-relay",
					Name:   "RelayEnvironmentProvider",
					Local:  "RelayEnvironmentProvider",
				})
				env, envImport := mutate.EnsureImport(t, mutate.ImportSpec{
					Module:  environmentImportPath(c),
					Default: true,
					Local:   "RelayEnvironment",
				})

				wrap, err := mutate.WrapJSX(t, anchor, provider, "environment", env)
				if err != nil {
					return mutate.Result{}, err
				}
				if !wrap.Applied {
					return wrap, nil
				}
				return mutate.Merge(providerImport, envImport, wrap), nil
			})
		},
	}
}

// environmentImportPath computes the module specifier for the generated
// environment file relative to the entry file, without extension.
func environmentImportPath(c *project.Context) string {
	from := path.Dir(filepath.ToSlash(c.MainEntry.Rel))
	target := strings.TrimSuffix(filepath.ToSlash(c.Environment.Rel), c.ScriptExt())

	rel, err := filepath.Rel(from, target)
	if err != nil {
		rel = target
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}
