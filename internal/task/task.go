// Package task defines the sequential pipeline of integration tasks and the
// runner that executes them. Tasks are isolated: each parses, mutates and
// writes its own files, and a failure aborts only that task.
package task

import "relaywire/internal/project"

// Status is the lifecycle state of one task.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSucceeded
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// validTransition encodes the per-task state machine:
// Pending -> Running -> {Succeeded | Skipped | Failed}, with the enabled
// predicate allowed to short-circuit Pending straight to Skipped.
func validTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusRunning || to == StatusSkipped
	case StatusRunning:
		return to == StatusSucceeded || to == StatusSkipped || to == StatusFailed
	}
	return false
}

// Outcome is the terminal result of one task execution.
type Outcome struct {
	Status Status
	Reason string // set for Skipped
	Err    error  // set for Failed
}

// Succeeded reports a completed mutation.
func Succeeded() Outcome { return Outcome{Status: StatusSucceeded} }

// Skipped reports that the desired state already holds (or the task does not
// apply to this project). Not an error.
func Skipped(reason string) Outcome { return Outcome{Status: StatusSkipped, Reason: reason} }

// Failed reports a fatal condition for this task only.
func Failed(err error) Outcome { return Outcome{Status: StatusFailed, Err: err} }

// Task is one discrete, independently fallible unit of the pipeline.
type Task struct {
	// Label names the task in output; constructors embed the resolved target
	// path once it is known.
	Label string
	// Enabled may short-circuit the task to Skipped without running it.
	// nil means always enabled.
	Enabled func(c *project.Context) bool
	// Run performs the mutation to completion and reports the outcome.
	Run func(c *project.Context) Outcome
}

// Result pairs a task with its recorded outcome.
type Result struct {
	Label   string
	Outcome Outcome
}

// RunResult aggregates one full pipeline run.
type RunResult struct {
	ID    string
	Tasks []Result
}

// Succeeded reports whether no task failed. Skips are not failures.
func (r *RunResult) Succeeded() bool {
	for _, t := range r.Tasks {
		if t.Outcome.Status == StatusFailed {
			return false
		}
	}
	return true
}

// Failed returns the results of failed tasks.
func (r *RunResult) Failed() []Result {
	var out []Result
	for _, t := range r.Tasks {
		if t.Outcome.Status == StatusFailed {
			out = append(out, t)
		}
	}
	return out
}

// Observer receives task lifecycle events. Logging and progress display live
// behind this interface, never inside the runner.
type Observer interface {
	TaskStarted(label string)
	TaskFinished(label string, o Outcome)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) TaskStarted(string)           {}
func (NopObserver) TaskFinished(string, Outcome) {}
