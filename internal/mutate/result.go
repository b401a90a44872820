// Package mutate computes the structural edits that integrate Relay into a
// host file. Every mutator is pure: it inspects the tree, decides whether the
// change is already present, and returns a Result carrying either the edits
// to apply or the reason nothing needs to change. Skipping is a first-class
// return value, never a logged side effect.
package mutate

import "relaywire/internal/ast"

// Result is the outcome of one mutation attempt.
type Result struct {
	// Applied is false when the desired structure already exists.
	Applied bool
	// Reason explains a skip ("already present", "already wrapped", ...).
	Reason string
	// Edits to splice into the source. Empty when Applied is false.
	Edits []ast.Edit
}

func applied(edits ...ast.Edit) Result {
	return Result{Applied: true, Edits: edits}
}

func alreadyApplied(reason string) Result {
	return Result{Reason: reason}
}

// Merge combines results from mutations against the same tree. The combined
// result is applied if any input was, with all edits concatenated.
func Merge(results ...Result) Result {
	var out Result
	for _, r := range results {
		if r.Applied {
			out.Applied = true
			out.Edits = append(out.Edits, r.Edits...)
		} else if out.Reason == "" {
			out.Reason = r.Reason
		}
	}
	return out
}
