// Package logging configures structured logging on top of log/slog.
//
// Setup installs the process-wide default logger from configuration;
// Component derives a named child logger for a subsystem. Passwords are
// never passed as log attributes anywhere in the codebase — log lines
// carry only result metadata.
package logging
