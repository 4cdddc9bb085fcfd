package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/revloop/internal/analysis"
	"github.com/thruflo/revloop/internal/loop"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".revloop"), 0o755))
	require.NoError(t, os.WriteFile(Path(dir), []byte(content), 0o644))
}

func TestLoadConfig_Default(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, `limits:
  max_iterations: 500
progress:
  small_range: 50
  interval: 1000
output:
  dir: /var/tmp/loops
  save: false
workers: 8
log_level: debug
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Limits.MaxIterations)
	assert.Equal(t, int64(50), cfg.Progress.SmallRange)
	assert.Equal(t, int64(1000), cfg.Progress.Interval)
	assert.Equal(t, "/var/tmp/loops", cfg.Output.Dir)
	assert.False(t, cfg.Output.Save)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, `output:
  dir: out
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Output.Dir)
	assert.True(t, cfg.Output.Save)
	assert.Equal(t, DefaultMaxIterations, cfg.Limits.MaxIterations)
	assert.Equal(t, DefaultInterval, cfg.Progress.Interval)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, `limits: [`)

	_, err := LoadConfig(tmpDir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"zero max_iterations", "limits:\n  max_iterations: 0\n", "limits.max_iterations"},
		{"negative small_range", "progress:\n  small_range: -1\n", "progress.small_range"},
		{"zero interval", "progress:\n  interval: 0\n", "progress.interval"},
		{"empty output dir", "output:\n  dir: \"\"\n", "output.dir"},
		{"zero workers", "workers: 0\n", "workers"},
		{"unknown log level", "log_level: loud\n", "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			writeConfigFile(t, tmpDir, tt.content)

			_, err := LoadConfig(tmpDir)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestResultsDir(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("/proj", "results"), ResultsDir("/proj", &cfg))

	cfg.Output.Dir = "/abs/out"
	assert.Equal(t, "/abs/out", ResultsDir("/proj", &cfg))
}

func TestWriteConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Workers = 4

	require.NoError(t, WriteConfig(tmpDir, &cfg, false))

	data, err := os.ReadFile(Path(tmpDir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "limits:\n  max_iterations: 100000\n")

	loaded, err := LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)

	err = WriteConfig(tmpDir, &cfg, false)
	assert.ErrorIs(t, err, ErrConfigExists)

	cfg.Workers = 2
	require.NoError(t, WriteConfig(tmpDir, &cfg, true))
	loaded, err = LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Workers)
}

func TestWriteConfig_RejectsInvalid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Workers = 0

	err := WriteConfig(t.TempDir(), &cfg, false)
	assert.True(t, IsValidationError(err))
}

func TestDefaultConfig_MatchesConsumers(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, loop.DefaultMaxIterations, cfg.Limits.MaxIterations)
	assert.Equal(t, analysis.DefaultSmallRange, cfg.Progress.SmallRange)
	assert.Equal(t, analysis.DefaultInterval, cfg.Progress.Interval)
}
