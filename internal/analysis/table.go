package analysis

import (
	"slices"

	"github.com/thruflo/revloop/internal/loop"
)

// Entry is one canonical loop and the number of starting values that reached it.
type Entry struct {
	Loop  loop.Loop
	Count int64
}

// FrequencyTable counts starting values per canonical loop.
// It is not safe for concurrent use; shard and Merge instead.
type FrequencyTable struct {
	entries map[string]*Entry
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{entries: make(map[string]*Entry)}
}

// Add records one starting value ending in l.
func (t *FrequencyTable) Add(l loop.Loop) {
	t.AddN(l, 1)
}

// AddN records n starting values ending in l.
func (t *FrequencyTable) AddN(l loop.Loop, n int64) {
	key := l.Key()
	if e, ok := t.entries[key]; ok {
		e.Count += n
		return
	}
	t.entries[key] = &Entry{Loop: slices.Clone(l), Count: n}
}

// Merge adds every count in o to t. Merging is order independent.
func (t *FrequencyTable) Merge(o *FrequencyTable) {
	for _, e := range o.entries {
		t.AddN(e.Loop, e.Count)
	}
}

// Count returns the count recorded for l.
func (t *FrequencyTable) Count(l loop.Loop) int64 {
	if e, ok := t.entries[l.Key()]; ok {
		return e.Count
	}
	return 0
}

// Len returns the number of distinct loops.
func (t *FrequencyTable) Len() int {
	return len(t.entries)
}

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int64 {
	var total int64
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

// Sorted returns the entries by count descending, ties broken by loop
// value descending.
func (t *FrequencyTable) Sorted() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Count != b.Count {
			if a.Count > b.Count {
				return -1
			}
			return 1
		}
		return b.Loop.Compare(a.Loop)
	})
	return out
}
