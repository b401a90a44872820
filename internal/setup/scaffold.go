package setup

import (
	"encoding/json"
	"path"
	"path/filepath"

	"relaywire/internal/fsio"
	"relaywire/internal/project"
	"relaywire/internal/task"
)

// EnsureArtifactDir creates the directory the Relay compiler emits generated
// artifacts into.
func EnsureArtifactDir(c *project.Context, files fsio.Access) task.Task {
	return task.Task{
		Label: "Create artifact directory " + c.ArtifactDir.Rel,
		Run: func(c *project.Context) task.Outcome {
			exists, err := files.Exists(c.ArtifactDir.Abs)
			if err != nil {
				return task.Failed(err)
			}
			if exists {
				return task.Skipped(c.ArtifactDir.Rel + " already exists")
			}
			if err := files.MkdirAll(c.ArtifactDir.Abs); err != nil {
				return task.Failed(err)
			}
			return task.Succeeded()
		},
	}
}

// CreateEnvironment writes the Relay environment module the provider wrap
// imports. An existing file is never overwritten.
func CreateEnvironment(c *project.Context, files fsio.Access) task.Task {
	return createFileTask("Create "+c.Environment.Rel, c.Environment, files,
		func(c *project.Context) []byte {
			return []byte(environmentSource(c.TypeScript, c.Subscriptions))
		})
}

// CreateSubscriptions writes the WebSocket subscriptions module for the
// realtime channel. Only enabled when the project wants subscriptions.
func CreateSubscriptions(c *project.Context, files fsio.Access) task.Task {
	loc := subscriptionsLocation(c)
	t := createFileTask("Create "+loc.Rel, loc, files,
		func(c *project.Context) []byte {
			return []byte(subscriptionsSource(c.TypeScript))
		})
	t.Enabled = func(c *project.Context) bool { return c.Subscriptions }
	return t
}

// CreateSchema writes a placeholder GraphQL schema when the project has none.
func CreateSchema(c *project.Context, files fsio.Access) task.Task {
	return createFileTask("Create "+c.Schema.Rel, c.Schema, files,
		func(*project.Context) []byte { return []byte(schemaPlaceholder) })
}

// relayConfig mirrors the on-disk shape of relay.config.json.
type relayConfig struct {
	Src               string   `json:"src"`
	Language          string   `json:"language"`
	Schema            string   `json:"schema"`
	ArtifactDirectory string   `json:"artifactDirectory"`
	Excludes          []string `json:"excludes"`
}

// CreateRelayConfig writes relay.config.json for the Relay compiler.
func CreateRelayConfig(c *project.Context, files fsio.Access) task.Task {
	loc := project.Loc(c.Root, "relay.config.json")
	return createFileTask("Create "+loc.Rel, loc, files,
		func(c *project.Context) []byte {
			cfg := relayConfig{
				Src:               "./",
				Language:          c.RelayLanguage(),
				Schema:            "./" + c.Schema.Rel,
				ArtifactDirectory: "./" + c.ArtifactDir.Rel,
				Excludes:          []string{"**/node_modules/**", "**/__generated__/**"},
			}
			data, _ := json.MarshalIndent(cfg, "", "  ")
			return append(data, '\n')
		})
}

// createFileTask builds a skip-if-exists file generation task.
func createFileTask(label string, loc project.Location, files fsio.Access, content func(c *project.Context) []byte) task.Task {
	return task.Task{
		Label: label,
		Run: func(c *project.Context) task.Outcome {
			exists, err := files.Exists(loc.Abs)
			if err != nil {
				return task.Failed(err)
			}
			if exists {
				return task.Skipped(loc.Rel + " already exists")
			}
			if err := files.Write(loc.Abs, content(c)); err != nil {
				return task.Failed(err)
			}
			return task.Succeeded()
		},
	}
}

// subscriptionsLocation places the subscriptions module beside the
// environment module.
func subscriptionsLocation(c *project.Context) project.Location {
	rel := path.Join(path.Dir(filepath.ToSlash(c.Environment.Rel)), "relaySubscriptions"+c.ScriptExt())
	return project.Loc(c.Root, rel)
}
