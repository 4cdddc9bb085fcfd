package loop

import (
	"errors"
	"fmt"

	"github.com/thruflo/revloop/internal/digits"
)

// DefaultMaxIterations bounds a single walk when Options leaves it unset.
const DefaultMaxIterations = 100000

// ErrNoLoop is returned when no value repeats within the iteration cap.
var ErrNoLoop = errors.New("no loop found within iteration limit")

// Tracer observes each step of a walk.
type Tracer interface {
	Step(index int, current, reversed, next int64)
}

// ResultTracer is implemented by tracers that also want the finished Result
// of each walk.
type ResultTracer interface {
	Tracer
	Done(res *Result)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(index int, current, reversed, next int64)

// Step calls f.
func (f TracerFunc) Step(index int, current, reversed, next int64) {
	f(index, current, reversed, next)
}

// Options configures Detect.
type Options struct {
	// MaxIterations caps the number of steps; zero means DefaultMaxIterations.
	MaxIterations int
	// Tracer, when set, receives every step.
	Tracer Tracer
}

// Result is the full outcome of walking one starting value.
type Result struct {
	Start int64
	// Sequence holds visited values in order, up to but excluding the first repeat.
	Sequence []int64
	// LoopStart is the index in Sequence where the repeated value was first seen.
	LoopStart int
	// Raw is Sequence[LoopStart:], in the order first encountered.
	Raw []int64
	// Canonical is Raw rotated to start at its minimum.
	Canonical Loop
}

// Detect walks the sequence from start until a value repeats.
func Detect(start int64, opts Options) (*Result, error) {
	if start < 0 {
		return nil, fmt.Errorf("detect loop from %d: %w", start, digits.ErrInvalidInput)
	}

	limit := opts.MaxIterations
	if limit <= 0 {
		limit = DefaultMaxIterations
	}

	seen := make(map[int64]int)
	var sequence []int64
	current := start

	for {
		if _, ok := seen[current]; ok {
			break
		}
		if len(sequence) >= limit {
			return nil, fmt.Errorf("detect loop from %d after %d steps: %w", start, limit, ErrNoLoop)
		}

		index := len(sequence)
		seen[current] = index
		sequence = append(sequence, current)

		next, reversed, err := digits.Step(current)
		if err != nil {
			return nil, fmt.Errorf("detect loop from %d: %w", start, err)
		}
		if opts.Tracer != nil {
			opts.Tracer.Step(index, current, reversed, next)
		}
		current = next
	}

	loopStart := seen[current]
	raw := sequence[loopStart:]
	res := &Result{
		Start:     start,
		Sequence:  sequence,
		LoopStart: loopStart,
		Raw:       raw,
		Canonical: Canonicalize(raw),
	}

	if rt, ok := opts.Tracer.(ResultTracer); ok {
		rt.Done(res)
	}
	return res, nil
}

// Find returns the canonical loop reached from start using default options.
func Find(start int64) (Loop, error) {
	res, err := Detect(start, Options{})
	if err != nil {
		return nil, err
	}
	return res.Canonical, nil
}
