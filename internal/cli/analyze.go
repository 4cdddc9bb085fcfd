package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thruflo/revloop/internal/analysis"
	"github.com/thruflo/revloop/internal/config"
	"github.com/thruflo/revloop/internal/digits"
	"github.com/thruflo/revloop/internal/logging"
	"github.com/thruflo/revloop/internal/loop"
	"github.com/thruflo/revloop/internal/report"
	"github.com/thruflo/revloop/internal/results"
)

// ResultWriter persists finished analyses.
type ResultWriter interface {
	SaveRange(start, end int64, summary string) (string, error)
	SaveSingle(number int64, transcript string, canonical loop.Loop) (string, error)
}

// resultWriter is the writer used by the analysis commands.
// It can be overridden in tests.
var resultWriter ResultWriter

func writerFor(base string, cfg *config.Config) ResultWriter {
	if resultWriter != nil {
		return resultWriter
	}
	return results.NewStore(config.ResultsDir(base, cfg))
}

// parseInteger parses a decimal integer of either sign.
func parseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, digits.ErrInvalidInput)
	}
	return n, nil
}

// parseNumber parses a non-negative decimal integer.
func parseNumber(s string) (int64, error) {
	n, err := parseInteger(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%d: %w", n, digits.ErrInvalidInput)
	}
	return n, nil
}

type numberRequest struct {
	Number        int64
	Save          bool
	MaxIterations int
}

// analyzeNumber traces one starting value, prints the transcript and
// optionally saves it. A save failure is reported but not returned.
func analyzeNumber(out io.Writer, w ResultWriter, req numberRequest) error {
	var transcript bytes.Buffer
	res, err := loop.Detect(req.Number, loop.Options{
		MaxIterations: req.MaxIterations,
		Tracer:        report.NewTranscript(&transcript),
	})
	if err != nil {
		return err
	}

	fmt.Fprint(out, transcript.String())

	if !req.Save {
		return nil
	}

	path, err := w.SaveSingle(req.Number, transcript.String(), res.Canonical)
	if err != nil {
		reportSaveFailure(out, err, "Analysis was displayed above but not saved.", "number", req.Number)
		return nil
	}
	printSaved(out, "Detailed analysis saved to", path)
	return nil
}

type rangeRequest struct {
	Start, End int64
	ShowSteps  bool
	Save       bool
	Workers    int
	Config     *config.Config
}

// analyzeRange tallies the loops for every value in the range, prints the
// summary and optionally saves it. A save failure is reported but not returned.
func analyzeRange(ctx context.Context, out io.Writer, w ResultWriter, req rangeRequest) error {
	if err := analysis.ValidateRange(req.Start, req.End); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nAnalyzing numbers from %d to %d...\n", req.Start, req.End)

	progress := report.NewProgress(out)
	opts := analysis.Options{
		MaxIterations: req.Config.Limits.MaxIterations,
		Workers:       req.Workers,
		Reporter:      progress,
		SmallRange:    req.Config.Progress.SmallRange,
		Interval:      req.Config.Progress.Interval,
	}
	if req.ShowSteps {
		opts.Tracer = report.NewTranscript(out)
		progress.DisableInPlace()
	}

	a, err := analysis.AnalyzeRange(ctx, req.Start, req.End, opts)
	if err != nil {
		return err
	}

	summary := a.Summary()
	styler := report.NewStyler(report.IsTerminal(out))
	fmt.Fprint(out, "\n"+styler.Summary(summary))

	if !req.Save {
		return nil
	}

	path, err := w.SaveRange(req.Start, req.End, summary)
	if err != nil {
		reportSaveFailure(out, err, "Results were displayed above but not saved.", "start", req.Start, "end", req.End)
		return nil
	}
	printSaved(out, "Results saved to", path)
	return nil
}

func reportSaveFailure(out io.Writer, err error, note string, keyVals ...interface{}) {
	logging.Warn("failed to save results", append([]interface{}{"error", err}, keyVals...)...)

	styler := report.NewStyler(report.IsTerminal(out))
	fmt.Fprintf(out, "\n%s\n", styler.Warn(fmt.Sprintf("Error saving to file: %v", err)))
	fmt.Fprintln(out, note)
}

func printSaved(out io.Writer, label, path string) {
	styler := report.NewStyler(report.IsTerminal(out))
	fmt.Fprintf(out, "\n%s: %s\n", label, styler.Muted(path))
}
