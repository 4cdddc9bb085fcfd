package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thruflo/revloop/internal/analysis"
	"github.com/thruflo/revloop/internal/logging"
	"github.com/thruflo/revloop/internal/loop"
	"gopkg.in/yaml.v3"
)

// Default values for Config. Limits and cadence follow the packages that
// consume them.
const (
	DefaultMaxIterations = loop.DefaultMaxIterations
	DefaultSmallRange    = analysis.DefaultSmallRange
	DefaultInterval      = analysis.DefaultInterval
	DefaultOutputDir     = "results"
	DefaultWorkers       = 1
	DefaultLogLevel      = "warn"
)

// ErrConfigExists is returned by WriteConfig when the file is already present.
var ErrConfigExists = errors.New("config file already exists")

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Limits: Limits{MaxIterations: DefaultMaxIterations},
		Progress: Progress{
			SmallRange: DefaultSmallRange,
			Interval:   DefaultInterval,
		},
		Output: Output{
			Dir:  DefaultOutputDir,
			Save: true,
		},
		Workers:  DefaultWorkers,
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Path returns the location of config.yaml under basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, ".revloop", "config.yaml")
}

// LoadConfig reads and parses .revloop/config.yaml from the given base path.
// A missing file yields the defaults; keys absent from the file keep theirs.
func LoadConfig(basePath string) (*Config, error) {
	data, err := os.ReadFile(Path(basePath))
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Limits.MaxIterations <= 0 {
		return ValidationError{Field: "limits.max_iterations", Message: "must be positive"}
	}
	if cfg.Progress.SmallRange <= 0 {
		return ValidationError{Field: "progress.small_range", Message: "must be positive"}
	}
	if cfg.Progress.Interval <= 0 {
		return ValidationError{Field: "progress.interval", Message: "must be positive"}
	}
	if cfg.Output.Dir == "" {
		return ValidationError{Field: "output.dir", Message: "required field is empty"}
	}
	if cfg.Workers < 1 {
		return ValidationError{Field: "workers", Message: "must be at least 1"}
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}
	return nil
}

// ResultsDir resolves the configured output directory against basePath.
func ResultsDir(basePath string, cfg *Config) string {
	if filepath.IsAbs(cfg.Output.Dir) {
		return cfg.Output.Dir
	}
	return filepath.Join(basePath, cfg.Output.Dir)
}

// WriteConfig writes cfg to .revloop/config.yaml, refusing to replace an
// existing file unless force is set.
func WriteConfig(basePath string, cfg *Config, force bool) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	path := Path(basePath)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
