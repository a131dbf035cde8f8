// Package analyzer implements the password strength analysis engine.
//
// The engine is a set of independent, pure scoring functions composed by
// a single aggregator:
//
//   - Charset inspection: which character categories a password uses
//   - Entropy estimation: length x log2(inferred alphabet size)
//   - Common password detection: exact, suffix-stripped, and prefix matching
//     against a weak password dictionary
//   - Pattern detection: keyboard runs, ascending/descending sequences,
//     character repetition, and simple numeric suffixes
//   - Uniqueness: ratio of distinct characters to total length
//
// Analyze combines the component results into a weighted 0-100 score with
// a qualitative strength level, a per-component breakdown, and actionable
// recommendations. Every function is total over arbitrary string input;
// degenerate inputs (empty password, single-category alphabets) produce
// defined zero values rather than errors.
//
// All dictionaries and pattern tables are immutable after construction, so
// an Analyzer is safe for concurrent use by multiple goroutines.
package analyzer
