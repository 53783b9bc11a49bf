// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"catalog-viewer/internal/common/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// CATALOG_SOURCE_URL for source.url.
const EnvPrefix = "CATALOG"

// envKeys are bound explicitly so that overrides reach Unmarshal even when
// no config file mentions the key.
var envKeys = []string{
	"app.name", "app.version", "app.environment",
	"source.url", "source.timeout", "source.rate_limit", "source.burst", "source.user_agent",
	"source.max_body",
	"display.timezone", "display.validate_output",
	"logging.level", "logging.format", "logging.output",
	"metrics.enabled", "metrics.address",
}

// Load reads configs/config.yaml, merges config.<env>.yaml over it and applies
// CATALOG_* environment overrides. Missing files are not an error.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv(EnvPrefix + "_APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional overlay

	return decode(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string values. A placeholder
// whose variables are all unset becomes "", never the literal text.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "catalog-viewer"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	if cfg.Source.Timeout == 0 {
		cfg.Source.Timeout = 10000
	}
	if cfg.Source.RateLimit > 0 && cfg.Source.Burst == 0 {
		cfg.Source.Burst = 1
	}
	if cfg.Source.MaxBody == 0 {
		cfg.Source.MaxBody = 10 << 20
	}
	if cfg.Source.UserAgent == "" {
		cfg.Source.UserAgent = cfg.App.Name + "/" + cfg.App.Version
	}

	if cfg.Display.Timezone == "" {
		cfg.Display.Timezone = "Europe/Moscow"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9090"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Source.Timeout < 0 {
		return errors.NewInvalidSettingsError("source.timeout", "must not be negative")
	}
	if cfg.Source.RateLimit < 0 {
		return errors.NewInvalidSettingsError("source.rate_limit", "must not be negative")
	}
	if cfg.Source.Burst < 0 {
		return errors.NewInvalidSettingsError("source.burst", "must not be negative")
	}
	if cfg.Source.MaxBody < 0 {
		return errors.NewInvalidSettingsError("source.max_body", "must not be negative")
	}

	if _, err := cfg.Display.Location(); err != nil {
		return errors.NewInvalidSettingsError("display.timezone", err.Error())
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "console":
	default:
		return errors.NewInvalidSettingsError("logging.format", "expected json or console, got "+cfg.Logging.Format)
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Address == "" {
		return errors.NewInvalidSettingsError("metrics.address", "required when metrics are enabled")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
