package setup

import (
	"fmt"

	"relaywire/internal/ast"
	"relaywire/internal/fsio"
	"relaywire/internal/match"
	"relaywire/internal/mutate"
	"relaywire/internal/project"
	"relaywire/internal/task"
)

// ConfigureNext adds the Relay compiler settings to the exported Next.js
// configuration object. Configs commonly export through a variable binding
// (`const nextConfig = {...}; module.exports = nextConfig`), which the
// exported-object matcher resolves.
func ConfigureNext(c *project.Context, files fsio.Access) task.Task {
	return task.Task{
		Label:   "Add Relay compiler settings to " + c.Config.Rel,
		Enabled: func(c *project.Context) bool { return c.Toolchain == project.ToolchainNext },
		Run: func(c *project.Context) task.Outcome {
			return editFile(files, c.Config, func(t *ast.Tree) (mutate.Result, error) {
				config, err := match.ExportedObject(t)
				if err != nil {
					return mutate.Result{}, err
				}
				value := fmt.Sprintf(
					`{ relay: { src: "./", language: %q, artifactDirectory: %q } }`,
					c.RelayLanguage(), "./"+c.ArtifactDir.Rel,
				)
				return mutate.UpsertProperty(t, config, "compiler", value), nil
			})
		},
	}
}
