// Package export serializes batch analysis reports to JSON and CSV.
//
// JSON output is a lossless envelope carrying export metadata, the
// aggregate statistics, and every analysis result including the ordered
// feedback and recommendation lists. CSV output flattens each result to
// one row of summary columns for spreadsheet use.
package export
