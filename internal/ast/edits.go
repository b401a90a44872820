package ast

import (
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// Edit replaces the source bytes in [Start, End) with Text. A pure insertion
// has Start == End.
type Edit struct {
	Start uint32
	End   uint32
	Text  string
}

// Insert creates an insertion edit at byte offset at.
func Insert(at uint32, text string) Edit {
	return Edit{Start: at, End: at, Text: text}
}

// Replace creates an edit replacing the full extent of n.
func Replace(n *sitter.Node, text string) Edit {
	return Edit{Start: n.StartByte(), End: n.EndByte(), Text: text}
}

// Apply splices edits into src and returns the new source. Edits may be given
// in any order but must not overlap and must lie within src; bytes outside
// the edited ranges are copied through unchanged.
func Apply(src []byte, edits []Edit) ([]byte, error) {
	if len(edits) == 0 {
		return src, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := make([]byte, 0, len(src)+totalGrowth(sorted))
	var pos uint32
	for _, e := range sorted {
		if e.End < e.Start || int(e.End) > len(src) {
			return nil, fmt.Errorf("edit range [%d, %d) out of bounds (source is %d bytes)", e.Start, e.End, len(src))
		}
		if e.Start < pos {
			return nil, fmt.Errorf("overlapping edits at byte %d", e.Start)
		}
		out = append(out, src[pos:e.Start]...)
		out = append(out, e.Text...)
		pos = e.End
	}
	out = append(out, src[pos:]...)
	return out, nil
}

func totalGrowth(edits []Edit) int {
	n := 0
	for _, e := range edits {
		n += len(e.Text) - int(e.End-e.Start)
	}
	if n < 0 {
		return 0
	}
	return n
}
