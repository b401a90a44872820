package task

import (
	"errors"
	"testing"

	"relaywire/internal/project"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	events []string
}

func (r *eventRecorder) TaskStarted(label string) {
	r.events = append(r.events, "start:"+label)
}

func (r *eventRecorder) TaskFinished(label string, o Outcome) {
	r.events = append(r.events, "finish:"+label+":"+o.Status.String())
}

func TestRunnerExecutesSequentially(t *testing.T) {
	var order []string
	mk := func(name string) Task {
		return Task{Label: name, Run: func(*project.Context) Outcome {
			order = append(order, name)
			return Succeeded()
		}}
	}

	runner := NewRunner(&project.Context{}, nil)
	result := runner.RunAll([]Task{mk("a"), mk("b"), mk("c")})

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.True(t, result.Succeeded())
	assert.NotEmpty(t, result.ID)
	require.Len(t, result.Tasks, 3)
	for _, tr := range result.Tasks {
		assert.Equal(t, StatusSucceeded, tr.Outcome.Status)
	}
}

func TestRunnerDisabledTaskSkipsWithoutRunning(t *testing.T) {
	ran := false
	tasks := []Task{{
		Label:   "never",
		Enabled: func(c *project.Context) bool { return c.Toolchain == project.ToolchainVite },
		Run: func(*project.Context) Outcome {
			ran = true
			return Succeeded()
		},
	}}

	rec := &eventRecorder{}
	runner := NewRunner(&project.Context{Toolchain: project.ToolchainNext}, rec)
	result := runner.RunAll(tasks)

	assert.False(t, ran)
	assert.Equal(t, StatusSkipped, result.Tasks[0].Outcome.Status)
	// No start event for a short-circuited task.
	if diff := cmp.Diff([]string{"finish:never:skipped"}, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

// A failed task is recorded and the run continues; the aggregate reports
// failure.
func TestRunnerIsolatesFailures(t *testing.T) {
	boom := errors.New("anchor not found")
	tasks := []Task{
		{Label: "ok", Run: func(*project.Context) Outcome { return Succeeded() }},
		{Label: "bad", Run: func(*project.Context) Outcome { return Failed(boom) }},
		{Label: "after", Run: func(*project.Context) Outcome { return Skipped("already present") }},
	}

	runner := NewRunner(&project.Context{}, nil)
	result := runner.RunAll(tasks)

	assert.False(t, result.Succeeded())
	require.Len(t, result.Failed(), 1)
	assert.Equal(t, "bad", result.Failed()[0].Label)
	assert.ErrorIs(t, result.Tasks[1].Outcome.Err, boom)
	assert.Equal(t, StatusSkipped, result.Tasks[2].Outcome.Status)
	assert.Equal(t, "already present", result.Tasks[2].Outcome.Reason)
}

func TestRunnerObserverSeesLifecycle(t *testing.T) {
	rec := &eventRecorder{}
	tasks := []Task{
		{Label: "a", Run: func(*project.Context) Outcome { return Succeeded() }},
		{Label: "b", Run: func(*project.Context) Outcome { return Failed(errors.New("x")) }},
	}

	NewRunner(&project.Context{}, rec).RunAll(tasks)

	want := []string{
		"start:a", "finish:a:succeeded",
		"start:b", "finish:b:failed",
	}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerRejectsNonTerminalOutcome(t *testing.T) {
	tasks := []Task{{
		Label: "weird",
		Run:   func(*project.Context) Outcome { return Outcome{Status: StatusPending} },
	}}

	result := NewRunner(&project.Context{}, nil).RunAll(tasks)

	assert.Equal(t, StatusFailed, result.Tasks[0].Outcome.Status)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, validTransition(StatusPending, StatusRunning))
	assert.True(t, validTransition(StatusPending, StatusSkipped))
	assert.True(t, validTransition(StatusRunning, StatusSucceeded))
	assert.True(t, validTransition(StatusRunning, StatusFailed))
	assert.False(t, validTransition(StatusPending, StatusSucceeded))
	assert.False(t, validTransition(StatusSucceeded, StatusRunning))
	assert.False(t, validTransition(StatusFailed, StatusRunning))
}
