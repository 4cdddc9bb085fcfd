package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/revloop/internal/config"
	"github.com/thruflo/revloop/internal/loop"
)

func TestRotations(t *testing.T) {
	t.Parallel()

	got := Rotations(loop.Loop{1, 2, 3})
	assert.Equal(t, [][]int64{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}}, got)
}

func TestRotationsCanonicalize(t *testing.T) {
	t.Parallel()

	for _, r := range Rotations(NineLoop()) {
		assert.Equal(t, NineLoop(), loop.Canonicalize(r))
	}
}

func TestSampleTableSorted(t *testing.T) {
	t.Parallel()

	table := SampleTable()
	AssertTableTotal(t, table, 19)
	AssertSorted(t, table.Sorted())
}

func TestAssertCanonical(t *testing.T) {
	t.Parallel()

	AssertCanonical(t, NineLoop())
	AssertCanonical(t, ZeroLoop())
}

func TestSetupTestDir(t *testing.T) {
	t.Parallel()

	dir := SetupTestDir(t)

	_, err := os.Stat(config.Path(dir))
	require.NoError(t, err)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)
}

func TestWriteTestFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	WriteTestFile(t, dir, "a/b/c.txt", []byte("hello"))

	data, err := os.ReadFile(filepath.Join(dir, "a", "b", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestContextWithTestDeadline(t *testing.T) {
	t.Parallel()

	ctx, cancel := ContextWithTestDeadline(t, time.Minute)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.True(t, deadline.After(time.Now()))
}
