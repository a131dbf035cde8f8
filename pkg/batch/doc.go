// Package batch analyzes many passwords in one run and aggregates the
// results into summary statistics.
//
// The analysis engine is pure and shares no mutable state, so the
// runner fans work out across a bounded worker pool; results are
// returned in input order regardless of completion order. Statistics
// (strength distribution, running averages, common-password and pattern
// counts) are accumulated deterministically after all workers finish.
package batch
