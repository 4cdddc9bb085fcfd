package loop

import (
	"slices"
	"strconv"
	"strings"
)

// Loop is a cycle in canonical form: rotated so its minimum comes first.
// Treat it as immutable; Canonicalize always returns a fresh slice.
type Loop []int64

// Canonicalize rotates raw so it starts at the first occurrence of its
// minimum. An empty input yields an empty Loop.
func Canonicalize(raw []int64) Loop {
	if len(raw) == 0 {
		return Loop{}
	}

	minIdx := 0
	for i, v := range raw {
		if v < raw[minIdx] {
			minIdx = i
		}
	}

	out := make(Loop, 0, len(raw))
	out = append(out, raw[minIdx:]...)
	out = append(out, raw[:minIdx]...)
	return out
}

// Min returns the smallest element, which for a canonical loop is the first.
func (l Loop) Min() int64 {
	if len(l) == 0 {
		return 0
	}
	return slices.Min(l)
}

// Equal reports whether both loops hold the same values in the same order.
func (l Loop) Equal(o Loop) bool {
	return slices.Equal(l, o)
}

// Compare orders loops element by element, a shorter prefix sorting first.
func (l Loop) Compare(o Loop) int {
	return slices.Compare(l, o)
}

// Key returns a string usable as a map key for the loop.
func (l Loop) Key() string {
	var sb strings.Builder
	for i, v := range l {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	return sb.String()
}

// String renders the loop as "[a, b, c]".
func (l Loop) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
