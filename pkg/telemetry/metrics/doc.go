// Package metrics defines the Prometheus metrics exposed by serve mode.
//
// Metrics use a dedicated registry rather than the global default so
// tests and embedders stay isolated. Labels are bounded: strength has
// five values, mode and source a handful each.
package metrics
