package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StorageConfig locates the database file.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls the application logger and the activity log.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	ActivityLog string `yaml:"activity_log"`
}

// MetricsConfig enables the /metrics listener when an address is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Path: "projects.db"},
		Logging: LoggingConfig{Level: "info", ActivityLog: "activity.log"},
	}
}

// Load reads the YAML config at path when it exists and applies TRACKER_*
// environment overrides on top of the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	OverrideFromEnv(cfg)
	return cfg, nil
}

// OverrideFromEnv applies environment variables over the loaded config.
// Environment always wins.
func OverrideFromEnv(cfg *Config) {
	if v := os.Getenv("TRACKER_DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("TRACKER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TRACKER_ACTIVITY_LOG"); v != "" {
		cfg.Logging.ActivityLog = v
	}
	if v := os.Getenv("TRACKER_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
}
