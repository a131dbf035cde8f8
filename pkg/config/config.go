package config

import "time"

// Config is the root configuration structure for passfort.
type Config struct {
	// Dictionary configures the common-password dictionary.
	Dictionary DictionaryConfig `yaml:"dictionary"`

	// Wordlist configures the passphrase word list.
	Wordlist WordlistConfig `yaml:"wordlist"`

	// Batch configures batch analysis runs.
	Batch BatchConfig `yaml:"batch"`

	// History configures the local analysis history store.
	History HistoryConfig `yaml:"history"`

	// Server configures the HTTP API used by `passfort serve`.
	Server ServerConfig `yaml:"server"`

	// Telemetry configures logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Output configures default CLI output rendering.
	Output OutputConfig `yaml:"output"`
}

// DictionaryConfig selects the weak password dictionary.
type DictionaryConfig struct {
	// Path is an optional custom dictionary file (one entry per line).
	// Empty means the built-in dictionary.
	Path string `yaml:"path"`

	// Watch reloads the dictionary when the file changes (serve mode
	// only). Requires Path.
	Watch bool `yaml:"watch"`
}

// WordlistConfig selects the passphrase word list.
type WordlistConfig struct {
	// Path is an optional custom word list file. Empty means the
	// built-in list.
	Path string `yaml:"path"`
}

// BatchConfig controls batch analysis.
type BatchConfig struct {
	// Workers is the analysis worker count. 0 means one per CPU.
	// Default: 0
	Workers int `yaml:"workers"`
}

// HistoryConfig controls the local analysis history store. Only result
// metadata is recorded; passwords themselves are never stored.
type HistoryConfig struct {
	// Enabled turns history recording on.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// DBPath is the SQLite database file.
	// Default: "passfort-history.db"
	DBPath string `yaml:"db_path"`

	// RetentionDays is how long records are kept. 0 disables pruning
	// by age.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`

	// MaxRecords caps the record count; the oldest records beyond the
	// cap are pruned. 0 disables the cap.
	// Default: 0
	MaxRecords int `yaml:"max_records"`

	// PruneSchedule is a cron expression for automatic pruning in
	// serve mode (e.g. "0 3 * * *" for daily at 3 AM). Empty disables
	// the scheduler.
	// Default: ""
	PruneSchedule string `yaml:"prune_schedule"`
}

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	// ListenAddress is the "host:port" the server binds.
	// Default: "127.0.0.1:8377"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading a request.
	// Default: 10s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration for writing a response.
	// Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle limit.
	// Default: 60s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// MaxHeaderBytes limits request header size.
	// Default: 1 MiB
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TelemetryConfig controls observability.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: json or text.
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig controls Prometheus metrics.
type MetricsConfig struct {
	// Enabled exposes /metrics in serve mode.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace prefixes every metric name.
	// Default: "passfort"
	Namespace string `yaml:"namespace"`
}

// OutputConfig controls default CLI rendering.
type OutputConfig struct {
	// Format is the default output format: text, json or csv.
	// Default: "text"
	Format string `yaml:"format"`

	// Pretty indents JSON output.
	// Default: true
	Pretty bool `yaml:"pretty"`
}
