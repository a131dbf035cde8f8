package config

import "time"

// DefaultConfig returns the configuration used when no file or override
// supplies a value. Loading unmarshals YAML over this struct, so an
// explicit false in the file still overrides a true default.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			DBPath:        "passfort-history.db",
			RetentionDays: 90,
		},
		Server: ServerConfig{
			ListenAddress:   "127.0.0.1:8377",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxHeaderBytes:  1 << 20,
			ShutdownTimeout: 10 * time.Second,
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				Level:  "info",
				Format: "text",
			},
			Metrics: MetricsConfig{
				Enabled:   true,
				Namespace: "passfort",
			},
		},
		Output: OutputConfig{
			Format: "text",
			Pretty: true,
		},
	}
}
