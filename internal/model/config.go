package model

import (
	"runtime"
	"time"
)

// Config holds all atomlogic settings
type Config struct {
	Logic       LogicConfig       `yaml:"logic" mapstructure:"logic"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Progress    ProgressConfig    `yaml:"progress" mapstructure:"progress"`
}

// LogicConfig controls formula rendering
type LogicConfig struct {
	Quantifiers        bool `yaml:"quantifiers" mapstructure:"quantifiers"`                 // Wrap formulas in A/E quantifiers
	WithoutQuantifiers bool `yaml:"without_quantifiers" mapstructure:"without_quantifiers"` // Also generate *_wo_q datasets
}

// ConcurrencyConfig controls batch translation
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// CacheConfig controls memoization of translated relations
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL      time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Snapshot string        `yaml:"snapshot,omitempty" mapstructure:"snapshot"` // JSON file kept between runs (optional)
}

// OutputConfig controls dataset output
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// ProgressConfig controls batch progress logging
type ProgressConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Logic: LogicConfig{
			Quantifiers:        true,
			WithoutQuantifiers: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Output: OutputConfig{
			Dir: "./atomic_datasets",
		},
		Progress: ProgressConfig{
			Interval: 2 * time.Second,
		},
	}
}
