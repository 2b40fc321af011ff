package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all library configuration.
type Config struct {
	Logging LogConfig
	Metrics MetricsConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Enabled     bool   `envconfig:"MEASURE_LOG_ENABLED" default:"false"`
	Level       string `envconfig:"MEASURE_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"MEASURE_LOG_DEV" default:"false"`
}

// MetricsConfig holds prometheus collector configuration.
type MetricsConfig struct {
	Namespace string `envconfig:"MEASURE_METRICS_NAMESPACE" default:"measure"`
}

// Validate checks the log level.
func (l LogConfig) Validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown log level %q", l.Level)
	}
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Enabled:     false,
			Level:       "warn",
			Development: false,
		},
		Metrics: MetricsConfig{
			Namespace: "measure",
		},
	}
}
