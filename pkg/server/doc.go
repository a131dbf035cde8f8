// Package server exposes the analysis engine over a small HTTP API.
//
// Endpoints:
//
//	POST /v1/analyze     {"password": "..."}            -> analyzer.Result
//	POST /v1/generate    generator password settings    -> generated passwords + analyses
//	POST /v1/passphrase  word count and separator       -> generated passphrases + analyses
//	GET  /healthz        liveness probe
//	GET  /metrics        Prometheus exposition (when enabled)
//
// Passwords submitted for analysis are processed in memory only; they
// are never logged or persisted. The active dictionary can be swapped
// atomically at runtime, which the fsnotify-based DictionaryWatcher
// uses for hot reload.
package server
