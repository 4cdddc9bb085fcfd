// Package report holds the console-facing collaborators of an analysis:
// progress lines, step transcripts and terminal styling.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Progress prints range progress. On a terminal it rewrites a single line;
// elsewhere every notification is its own line.
type Progress struct {
	mu      sync.Mutex
	w       io.Writer
	inPlace bool
	printer *message.Printer
}

// NewProgress creates a Progress writing to w.
func NewProgress(w io.Writer) *Progress {
	return &Progress{
		w:       w,
		inPlace: IsTerminal(w),
		printer: message.NewPrinter(language.English),
	}
}

// DisableInPlace makes every notification its own line. Use it when other
// output, such as a step transcript, shares the writer.
func (p *Progress) DisableInPlace() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inPlace = false
}

// Progress implements analysis.Reporter.
func (p *Progress) Progress(processed, total, current int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := p.printer.Sprintf("  Processed %d/%d numbers", processed, total) +
		" (up to " + strconv.FormatInt(current, 10) + ")..."
	if !p.inPlace {
		fmt.Fprintln(p.w, line)
		return
	}

	fmt.Fprint(p.w, "\r\033[K"+line)
	if processed == total {
		fmt.Fprintln(p.w)
	}
}
