package config

import (
	"fmt"
	"net"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
var validLogFormats = map[string]bool{"json": true, "text": true}
var validOutputFormats = map[string]bool{"text": true, "json": true, "csv": true}

// Validate checks the configuration for values that cannot work. It
// returns the first problem found.
func Validate(cfg *Config) error {
	if cfg.Dictionary.Watch && cfg.Dictionary.Path == "" {
		return fmt.Errorf("dictionary.watch requires dictionary.path")
	}
	if cfg.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative, got %d", cfg.Batch.Workers)
	}
	if cfg.History.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must not be negative, got %d", cfg.History.RetentionDays)
	}
	if cfg.History.MaxRecords < 0 {
		return fmt.Errorf("history.max_records must not be negative, got %d", cfg.History.MaxRecords)
	}
	if cfg.History.Enabled && cfg.History.DBPath == "" {
		return fmt.Errorf("history.db_path must be set when history is enabled")
	}
	if cfg.History.PruneSchedule != "" {
		if _, err := cron.ParseStandard(cfg.History.PruneSchedule); err != nil {
			return fmt.Errorf("invalid history.prune_schedule %q: %w", cfg.History.PruneSchedule, err)
		}
	}
	if _, _, err := net.SplitHostPort(cfg.Server.ListenAddress); err != nil {
		return fmt.Errorf("invalid server.listen_address %q: %w", cfg.Server.ListenAddress, err)
	}
	if !validLogLevels[cfg.Telemetry.Logging.Level] {
		return fmt.Errorf("invalid telemetry.logging.level %q (want debug, info, warn or error)",
			cfg.Telemetry.Logging.Level)
	}
	if !validLogFormats[cfg.Telemetry.Logging.Format] {
		return fmt.Errorf("invalid telemetry.logging.format %q (want json or text)",
			cfg.Telemetry.Logging.Format)
	}
	if !validOutputFormats[cfg.Output.Format] {
		return fmt.Errorf("invalid output.format %q (want text, json or csv)", cfg.Output.Format)
	}
	return nil
}
