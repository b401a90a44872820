package setup

import (
	"relaywire/internal/ast"
	"relaywire/internal/fsio"
	"relaywire/internal/match"
	"relaywire/internal/mutate"
	"relaywire/internal/project"
	"relaywire/internal/task"
)

// ConfigureVite registers the Relay plugin in the plugins array of the object
// passed to Vite's defineConfig factory.
func ConfigureVite(c *project.Context, files fsio.Access) task.Task {
	return task.Task{
		Label:   "Add vite-plugin-relay to " + c.Config.Rel,
		Enabled: func(c *project.Context) bool { return c.Toolchain == project.ToolchainVite },
		Run: func(c *project.Context) task.Outcome {
			return editFile(files, c.Config, func(t *ast.Tree) (mutate.Result, error) {
				config, err := match.DefaultExportCall(t, "defineConfig")
				if err != nil {
					return mutate.Result{}, err
				}
				local, imported := mutate.EnsureImport(t, mutate.ImportSpec{
					Module:  "vite-plugin-relay",
					Default: true,
					Local:   "relay",
				})
				plugins, err := mutate.UpsertArrayElement(t, config, "plugins", local)
				if err != nil {
					return mutate.Result{}, err
				}
				return mutate.Merge(imported, plugins), nil
			})
		},
	}
}

// ConfigureRollup registers the Relay plugin in the plugins array of the
// exported Rollup configuration object.
func ConfigureRollup(c *project.Context, files fsio.Access) task.Task {
	return task.Task{
		Label:   "Add rollup-plugin-relay to " + c.Config.Rel,
		Enabled: func(c *project.Context) bool { return c.Toolchain == project.ToolchainRollup },
		Run: func(c *project.Context) task.Outcome {
			return editFile(files, c.Config, func(t *ast.Tree) (mutate.Result, error) {
				config, err := match.ExportedObject(t)
				if err != nil {
					return mutate.Result{}, err
				}
				local, imported := mutate.EnsureImport(t, mutate.ImportSpec{
					Module:  "rollup-plugin-relay",
					Default: true,
					Local:   "relay",
				})
				plugins, err := mutate.UpsertArrayElement(t, config, "plugins", local+"()")
				if err != nil {
					return mutate.Result{}, err
				}
				return mutate.Merge(imported, plugins), nil
			})
		},
	}
}
