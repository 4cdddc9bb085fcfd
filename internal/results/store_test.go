package results

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/revloop/internal/loop"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "results"))
	s.now = func() time.Time { return fixedTime }
	return s
}

func TestStore_SaveRange(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	summary := "--- Loop Analysis Summary ---\n--- End of Summary ---\n"

	path, err := s.SaveRange(1, 100, summary)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "loop_analysis_1_to_100_20260314_092653.txt", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "Number Loop Analysis Results\n" +
		"Generated on: 2026-03-14 09:26:53\n" +
		rule + "\n\n" +
		"--- Loop Analysis Summary ---\n--- End of Summary ---" +
		"\n\n" + rule + "\n" +
		"Analysis completed successfully.\n"
	assert.Equal(t, want, string(data))
}

func TestStore_SaveSingle(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	path, err := s.SaveSingle(9, "Processing number: 9\n", loop.Loop{9, 81, 63, 27, 45})
	require.NoError(t, err)
	assert.Equal(t, "single_number_analysis_9_20260314_092653.txt", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Single Number Loop Analysis\n")
	assert.Contains(t, content, "Processing number: 9\n")
	assert.Contains(t, content, "Final canonical loop: [9, 81, 63, 27, 45]\n")
	assert.Contains(t, content, "Analysis completed successfully.\n")
}

func TestStore_SaveFailure(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// A regular file where the directory should be.
	s := NewStore(filepath.Join(blocker, "results"))

	_, err := s.SaveRange(1, 2, "summary")
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	empty, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = s.SaveRange(1, 10, "summary")
	require.NoError(t, err)

	s.now = func() time.Time { return fixedTime.Add(time.Second) }
	singlePath, err := s.SaveSingle(7, "trace\n", loop.Loop{9})
	require.NoError(t, err)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(singlePath, later, later))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), []byte("x"), 0o644))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, KindSingle, records[0].Kind)
	assert.Equal(t, "single_number_analysis_7_20260314_092654.txt", records[0].Name)
	assert.Equal(t, KindRange, records[1].Kind)
}
