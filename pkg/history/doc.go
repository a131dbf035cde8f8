// Package history persists analysis result metadata in a local SQLite
// database.
//
// Records hold only derived metadata (length, score, strength, entropy,
// flags); the analyzed password itself never reaches this package.
// Retention is enforced by a Pruner, optionally driven by a cron
// schedule in serve mode.
package history
