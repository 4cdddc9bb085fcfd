// Package analysis tallies which canonical loop every value in an inclusive
// range ends in, and renders the tally as a text summary.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/thruflo/revloop/internal/logging"
	"github.com/thruflo/revloop/internal/loop"
)

// ErrInvalidRange is returned for negative bounds or an end below the start.
var ErrInvalidRange = errors.New("invalid range")

// Options configures AnalyzeRange. The zero value is usable.
type Options struct {
	// MaxIterations is passed through to loop.Detect.
	MaxIterations int
	// Workers shards the range across goroutines when greater than one.
	// It is ignored when Tracer is set so that traces stay in order.
	Workers int
	// Reporter receives progress notifications.
	Reporter Reporter
	// Tracer receives every step of every value.
	Tracer loop.Tracer
	// SmallRange and Interval tune the progress cadence; see ShouldReport.
	SmallRange int64
	Interval   int64
}

// Analysis is the outcome of one range analysis.
type Analysis struct {
	Start int64
	End   int64
	Total int64
	Table *FrequencyTable
}

// ValidateRange checks the bounds of an inclusive range.
func ValidateRange(start, end int64) error {
	if start < 0 || end < 0 {
		return fmt.Errorf("%w: bounds must be non-negative, got %d to %d", ErrInvalidRange, start, end)
	}
	if end < start {
		return fmt.Errorf("%w: end %d is less than start %d", ErrInvalidRange, end, start)
	}
	if end-start == math.MaxInt64 {
		return fmt.Errorf("%w: range %d to %d is too large", ErrInvalidRange, start, end)
	}
	return nil
}

// AnalyzeRange runs loop detection for every value in [start, end] and counts
// the canonical loops reached. On error no table is returned.
func AnalyzeRange(ctx context.Context, start, end int64, opts Options) (*Analysis, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}
	if opts.SmallRange <= 0 {
		opts.SmallRange = DefaultSmallRange
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	total := end - start + 1
	log := logging.With("start", start).With("end", end)
	log.Debug("analyzing range", "total", total, "workers", opts.Workers)

	progress := &progressCounter{reporter: opts.Reporter, total: total, opts: opts}

	workers := int64(opts.Workers)
	if opts.Tracer != nil || workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	var (
		table *FrequencyTable
		err   error
	)
	if workers == 1 {
		table, err = analyzeChunk(ctx, start, end, opts, progress)
	} else {
		table, err = analyzeSharded(ctx, start, end, workers, opts, progress)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("range analyzed", "distinct_loops", table.Len())

	return &Analysis{
		Start: start,
		End:   end,
		Total: total,
		Table: table,
	}, nil
}

func analyzeChunk(ctx context.Context, from, to int64, opts Options, progress *progressCounter) (*FrequencyTable, error) {
	table := NewFrequencyTable()
	detectOpts := loop.Options{MaxIterations: opts.MaxIterations, Tracer: opts.Tracer}

	for i := from; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := loop.Detect(i, detectOpts)
		if err != nil {
			return nil, err
		}
		table.Add(res.Canonical)
		progress.done(i)

		if i == to {
			break
		}
	}
	return table, nil
}

func analyzeSharded(ctx context.Context, start, end, workers int64, opts Options, progress *progressCounter) (*FrequencyTable, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	total := end - start + 1
	chunk := total / workers
	if total%workers != 0 {
		chunk++
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		merged   = NewFrequencyTable()
	)

	for from := start; from <= end; from += chunk {
		to := from + chunk - 1
		if to > end || to < from {
			to = end
		}

		wg.Add(1)
		go func(from, to int64) {
			defer wg.Done()

			table, err := analyzeChunk(ctx, from, to, opts, progress)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				return
			}
			merged.Merge(table)
		}(from, to)

		if to == end {
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return merged, nil
}

// progressCounter serialises Reporter calls across workers.
type progressCounter struct {
	mu        sync.Mutex
	reporter  Reporter
	total     int64
	processed int64
	opts      Options
}

func (p *progressCounter) done(current int64) {
	if p.reporter == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processed++
	if ShouldReport(p.processed, p.total, p.opts.SmallRange, p.opts.Interval) {
		p.reporter.Progress(p.processed, p.total, current)
	}
}

// Summary renders the analysis as human-readable text.
func (a *Analysis) Summary() string {
	var sb strings.Builder
	sb.WriteString("--- Loop Analysis Summary ---\n")

	if a.Table == nil || a.Table.Len() == 0 {
		sb.WriteString("No numbers were processed or no loops found.\n")
		return sb.String()
	}

	entries := a.Table.Sorted()
	fmt.Fprintf(&sb, "Analysis of numbers from %d to %d\n", a.Start, a.End)
	fmt.Fprintf(&sb, "Total numbers processed: %d\n", a.Total)
	fmt.Fprintf(&sb, "Found %d distinct loop type(s):\n", len(entries))
	sb.WriteString("\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "  Loop: %s  <-  %d starting number(s) ended in this loop.\n", e.Loop, e.Count)
	}
	sb.WriteString("--- End of Summary ---\n")
	return sb.String()
}
