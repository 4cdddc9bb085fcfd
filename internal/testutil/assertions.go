package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/revloop/internal/analysis"
	"github.com/thruflo/revloop/internal/loop"
)

// AssertCanonical asserts that l is non-empty and starts at its minimum.
func AssertCanonical(t *testing.T, l loop.Loop) {
	t.Helper()
	require.NotEmpty(t, l, "canonical loop is empty")
	assert.Equal(t, slices.Min(l), l[0], "loop %v does not start at its minimum", l)
}

// AssertTableTotal asserts that the counts in table sum to want.
func AssertTableTotal(t *testing.T, table *analysis.FrequencyTable, want int64) {
	t.Helper()
	require.NotNil(t, table, "table is nil")
	assert.Equal(t, want, table.Total(), "table total mismatch")
}

// AssertSorted asserts entries are ordered by count descending, then by
// loop descending.
func AssertSorted(t *testing.T, entries []analysis.Entry) {
	t.Helper()
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.Count == cur.Count {
			assert.Positive(t, prev.Loop.Compare(cur.Loop),
				"entries[%d] %v should sort after %v", i, cur.Loop, prev.Loop)
			continue
		}
		assert.Greater(t, prev.Count, cur.Count, "entries[%d] count out of order", i)
	}
}
