package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thruflo/revloop/internal/config"
)

// DefaultTestBuffer is subtracted from the test deadline so cleanup can run.
const DefaultTestBuffer = 5 * time.Second

// SetupTestDir creates a temp project directory with a default config.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	require.NoError(t, config.WriteConfig(dir, &cfg, false))
	return dir
}

// WriteTestFile writes content to basePath/relativePath, creating parents.
func WriteTestFile(t *testing.T, basePath, relativePath string, content []byte) {
	t.Helper()

	path := filepath.Join(basePath, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

// ContextWithTestDeadline returns a context that ends DefaultTestBuffer
// before the test deadline, or after fallback when there is no deadline.
func ContextWithTestDeadline(t *testing.T, fallback time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		adjusted := deadline.Add(-DefaultTestBuffer)
		if time.Until(adjusted) > 0 {
			return context.WithDeadline(context.Background(), adjusted)
		}
	}
	return context.WithTimeout(context.Background(), fallback)
}
