// internal/common/config/config.go
package config

import (
	"time"
	_ "time/tzdata"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Source  SourceConfig  `mapstructure:"source"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// SourceConfig describes where catalog documents are fetched from.
type SourceConfig struct {
	URL       string  `mapstructure:"url"`
	Timeout   int     `mapstructure:"timeout"`    // milliseconds
	RateLimit float64 `mapstructure:"rate_limit"` // requests per second, 0 disables
	Burst     int     `mapstructure:"burst"`
	UserAgent string  `mapstructure:"user_agent"`
	MaxBody   int64   `mapstructure:"max_body"` // bytes
}

// DisplayConfig controls how documents are rendered.
type DisplayConfig struct {
	Timezone       string            `mapstructure:"timezone"`
	MainFields     []MainFieldConfig `mapstructure:"main_fields"`
	ValidateOutput bool              `mapstructure:"validate_output"`
}

// MainFieldConfig is one row of the "Основные" field table.
type MainFieldConfig struct {
	Source    string `mapstructure:"source"`
	Label     string `mapstructure:"label"`
	Transform string `mapstructure:"transform"`
}

// Location resolves Timezone, falling back to UTC for an empty name.
func (d DisplayConfig) Location() (*time.Location, error) {
	if d.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(d.Timezone)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig controls the /health and /metrics listener.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}
