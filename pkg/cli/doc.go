// Package cli provides shared helpers for the passfort commands:
// output formatting, typed command errors, and signal-aware contexts.
package cli
