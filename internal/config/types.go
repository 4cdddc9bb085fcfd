package config

// Limits bounds the work done per starting value.
type Limits struct {
	MaxIterations int `yaml:"max_iterations"`
}

// Progress tunes how often range progress is reported.
type Progress struct {
	SmallRange int64 `yaml:"small_range"`
	Interval   int64 `yaml:"interval"`
}

// Output controls where and whether result files are written.
type Output struct {
	Dir  string `yaml:"dir"`
	Save bool   `yaml:"save"`
}

// Config represents the .revloop/config.yaml file.
type Config struct {
	Limits   Limits   `yaml:"limits"`
	Progress Progress `yaml:"progress"`
	Output   Output   `yaml:"output"`
	Workers  int      `yaml:"workers"`
	LogLevel string   `yaml:"log_level"`
}
