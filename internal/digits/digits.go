// Package digits implements the decimal digit reversal and the
// reverse-subtract step that drives every sequence.
//
// Reversal is not an involution: Reverse(100) is 1 and Reverse(1) is 10,
// because leading zeros vanish and single digits are padded to two.
package digits

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is returned for negative values.
	ErrInvalidInput = errors.New("input must be a non-negative integer")
	// ErrOverflow is returned when the reversed digits do not fit in an int64.
	ErrOverflow = errors.New("reversed value overflows int64")
)

// Reverse returns n with its decimal digits reversed.
// A single digit N is treated as "0N", so Reverse(9) is 90 and Reverse(0) is 0.
func Reverse(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("reverse %d: %w", n, ErrInvalidInput)
	}
	if n < 10 {
		return n * 10, nil
	}

	var rev int64
	for m := n; m > 0; m /= 10 {
		d := m % 10
		if rev > (math.MaxInt64-d)/10 {
			return 0, fmt.Errorf("reverse %d: %w", n, ErrOverflow)
		}
		rev = rev*10 + d
	}
	return rev, nil
}

// Step computes the value following n: zero when n equals its reversal,
// otherwise the absolute difference between the two. The reversal is
// returned alongside so callers can trace the step without recomputing it.
func Step(n int64) (next, reversed int64, err error) {
	reversed, err = Reverse(n)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case n == reversed:
		return 0, reversed, nil
	case n > reversed:
		return n - reversed, reversed, nil
	default:
		return reversed - n, reversed, nil
	}
}
