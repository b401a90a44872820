package main

import (
	"fmt"
	"io"
	"strings"

	"relaywire/internal/fsio"
	"relaywire/internal/task"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // green
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	headerStyle = lipgloss.NewStyle().Bold(true)
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	delStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// printSummary renders the per-task outcome list and the overall verdict.
func printSummary(w io.Writer, result *task.RunResult) {
	fmt.Fprintln(w)
	for _, t := range result.Tasks {
		switch t.Outcome.Status {
		case task.StatusSucceeded:
			fmt.Fprintf(w, "  %s %s\n", okStyle.Render("✓"), t.Label)
		case task.StatusSkipped:
			fmt.Fprintf(w, "  %s %s %s\n", skipStyle.Render("•"), t.Label, skipStyle.Render("("+t.Outcome.Reason+")"))
		case task.StatusFailed:
			fmt.Fprintf(w, "  %s %s\n      %s\n", failStyle.Render("✗"), t.Label, failStyle.Render(t.Outcome.Err.Error()))
		}
	}
	fmt.Fprintln(w)
	if result.Succeeded() {
		fmt.Fprintln(w, okStyle.Render("Relay integration complete."))
	} else {
		fmt.Fprintf(w, "%s\n", failStyle.Render(fmt.Sprintf("Relay integration finished with %d failed task(s).", len(result.Failed()))))
	}
}

// printDiffs renders a line diff for every write a dry run captured.
func printDiffs(w io.Writer, records []fsio.WriteRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, skipStyle.Render("Dry run: no files would change."))
		return
	}
	dmp := diffmatchpatch.New()
	for _, rec := range records {
		fmt.Fprintln(w, headerStyle.Render("--- "+rec.Path))
		before, after := string(rec.Old), string(rec.New)

		chars1, chars2, lines := dmp.DiffLinesToChars(before, after)
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)
		for _, d := range diffs {
			for _, line := range splitLines(d.Text) {
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					fmt.Fprintln(w, addStyle.Render("+ "+line))
				case diffmatchpatch.DiffDelete:
					fmt.Fprintln(w, delStyle.Render("- "+line))
				default:
					fmt.Fprintln(w, "  "+line)
				}
			}
		}
		fmt.Fprintln(w)
	}
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
