package task

import (
	"fmt"

	"relaywire/internal/project"

	"github.com/google/uuid"
)

// Runner executes tasks strictly sequentially in list order. Each task runs
// to completion before the next starts, so a task's writes are durable before
// its successor reads. A failed task is recorded and the run continues; the
// aggregated result reports failure if any task failed.
type Runner struct {
	ctx *project.Context
	obs Observer
}

// NewRunner builds a runner over the resolved project context. obs may be nil.
func NewRunner(ctx *project.Context, obs Observer) *Runner {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Runner{ctx: ctx, obs: obs}
}

// RunAll executes every task and aggregates the per-task outcomes.
func (r *Runner) RunAll(tasks []Task) RunResult {
	result := RunResult{ID: uuid.NewString()}

	for _, t := range tasks {
		result.Tasks = append(result.Tasks, Result{
			Label:   t.Label,
			Outcome: r.runOne(t),
		})
	}
	return result
}

func (r *Runner) runOne(t Task) Outcome {
	state := StatusPending

	if t.Enabled != nil && !t.Enabled(r.ctx) {
		out := Skipped("not applicable to this project")
		state = r.transition(state, out.Status, t.Label)
		r.obs.TaskFinished(t.Label, out)
		return out
	}

	state = r.transition(state, StatusRunning, t.Label)
	r.obs.TaskStarted(t.Label)

	out := t.Run(r.ctx)
	if !validTransition(state, out.Status) {
		out = Failed(fmt.Errorf("task %q produced non-terminal status %s", t.Label, out.Status))
	}
	r.obs.TaskFinished(t.Label, out)
	return out
}

// transition asserts the state machine; an invalid move is a programming
// error in a task constructor, not a runtime condition.
func (r *Runner) transition(from, to Status, label string) Status {
	if !validTransition(from, to) {
		panic(fmt.Sprintf("task %q: invalid transition %s -> %s", label, from, to))
	}
	return to
}
