package testutil

import (
	"github.com/thruflo/revloop/internal/analysis"
	"github.com/thruflo/revloop/internal/loop"
)

// NineLoop returns the loop reached from 9: 9, 81, 63, 27, 45.
// Returns a new slice each time to prevent test interference.
func NineLoop() loop.Loop {
	return loop.Loop{9, 81, 63, 27, 45}
}

// ZeroLoop returns the fixed point reached from palindromes.
func ZeroLoop() loop.Loop {
	return loop.Loop{0}
}

// Rotations returns every rotation of l, starting with l itself.
func Rotations(l loop.Loop) [][]int64 {
	out := make([][]int64, 0, len(l))
	for i := range l {
		r := make([]int64, 0, len(l))
		r = append(r, l[i:]...)
		r = append(r, l[:i]...)
		out = append(out, r)
	}
	return out
}

// SampleTable returns a table with one dominant loop and three tied on count.
func SampleTable() *analysis.FrequencyTable {
	table := analysis.NewFrequencyTable()
	table.AddN(loop.Loop{0}, 10)
	table.AddN(loop.Loop{1, 2}, 3)
	table.AddN(loop.Loop{5, 9}, 3)
	table.AddN(loop.Loop{5, 7, 8}, 3)
	return table
}
