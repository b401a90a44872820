package setup

import (
	"relaywire/internal/fsio"
	"relaywire/internal/project"
	"relaywire/internal/task"
)

// Tasks assembles the ordered integration task list for a project. Scaffold
// tasks run first so the config and wrap tasks can reference generated files;
// tasks for other toolchains disable themselves against the context.
func Tasks(c *project.Context, files fsio.Access) []task.Task {
	return []task.Task{
		EnsureArtifactDir(c, files),
		CreateSubscriptions(c, files),
		CreateEnvironment(c, files),
		CreateSchema(c, files),
		CreateRelayConfig(c, files),
		ConfigureVite(c, files),
		ConfigureRollup(c, files),
		ConfigureNext(c, files),
		WrapRoot(c, files),
	}
}
