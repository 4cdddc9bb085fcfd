package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/thruflo/revloop/internal/loop"
)

var divider = strings.Repeat("-", 20)

// Transcript renders a step-by-step account of each walk to a writer.
// It implements loop.ResultTracer.
type Transcript struct {
	w io.Writer
}

// NewTranscript creates a Transcript writing to w.
func NewTranscript(w io.Writer) *Transcript {
	return &Transcript{w: w}
}

// Step writes one step. The first step of a walk opens its section.
func (t *Transcript) Step(index int, current, reversed, next int64) {
	if index == 0 {
		fmt.Fprintf(t.w, "\nProcessing number: %d\n%s\n", current, divider)
	}

	fmt.Fprintf(t.w, "  Step %d: Current = %d\n", index, current)
	fmt.Fprintf(t.w, "    Reversed = %d (single digits 'N' treated as '0N' for reversal)\n", reversed)

	switch {
	case current == reversed:
		fmt.Fprintf(t.w, "    %d == %d, next = 0\n", current, reversed)
	case current > reversed:
		fmt.Fprintf(t.w, "    %d - %d = %d\n", current, reversed, next)
	default:
		fmt.Fprintf(t.w, "    %d - %d = %d\n", reversed, current, next)
	}
}

// Done closes the section for a finished walk.
func (t *Transcript) Done(res *loop.Result) {
	repeated := res.Sequence[res.LoopStart]
	fmt.Fprintf(t.w, "  Loop detected. Current number %d was first seen at sequence index %d.\n", repeated, res.LoopStart)
	fmt.Fprintf(t.w, "  Raw loop sequence: %s\n", loop.Loop(res.Raw))
	fmt.Fprintf(t.w, "  Canonical loop: %s\n", res.Canonical)
	fmt.Fprintf(t.w, "%s\n", divider)
}
