package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, starting from the
// defaults and validating the final result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like LoadConfig but returns the defaults (with
// environment overrides applied) when no file exists at path. This lets
// the CLI run without a config file.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		applyEnvOverrides(cfg)
		if err := Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
		return cfg, nil
	}
	return nil, err
}

// applyEnvOverrides applies PASSFORT_SECTION_FIELD environment variable
// overrides. Environment variables take precedence over file values.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("PASSFORT_DICTIONARY_PATH"); val != "" {
		cfg.Dictionary.Path = val
	}
	if val := os.Getenv("PASSFORT_DICTIONARY_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Dictionary.Watch = b
		}
	}
	if val := os.Getenv("PASSFORT_WORDLIST_PATH"); val != "" {
		cfg.Wordlist.Path = val
	}
	if val := os.Getenv("PASSFORT_BATCH_WORKERS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Batch.Workers = i
		}
	}
	if val := os.Getenv("PASSFORT_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := os.Getenv("PASSFORT_HISTORY_DB_PATH"); val != "" {
		cfg.History.DBPath = val
	}
	if val := os.Getenv("PASSFORT_HISTORY_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.History.RetentionDays = i
		}
	}
	if val := os.Getenv("PASSFORT_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("PASSFORT_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("PASSFORT_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("PASSFORT_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("PASSFORT_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("PASSFORT_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("PASSFORT_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
}
