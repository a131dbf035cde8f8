package main

import (
	"fmt"
	"io"

	"passfort-hq/passfort/pkg/analyzer"
	"passfort-hq/passfort/pkg/batch"
	"passfort-hq/passfort/pkg/config"
)

// breakdownOrder fixes the rendering order of the score components.
var breakdownOrder = []string{
	"length",
	"character_types",
	"entropy",
	"common_password",
	"patterns",
	"uniqueness",
}

// renderResult writes a human-readable analysis report.
func renderResult(w io.Writer, result *analyzer.Result) {
	fmt.Fprintf(w, "Length:    %d characters\n", result.Length)
	fmt.Fprintf(w, "Strength:  %s\n", result.Strength)
	fmt.Fprintf(w, "Score:     %.1f/%d\n", result.TotalScore, result.MaxScore)
	fmt.Fprintf(w, "Entropy:   %.1f bits (alphabet size %d)\n", result.EntropyBits, result.AlphabetSize)

	fmt.Fprintln(w, "\nBreakdown:")
	for _, key := range breakdownOrder {
		if val, ok := result.Breakdown[key]; ok {
			fmt.Fprintf(w, "  %-16s %s\n", key, val)
		}
	}

	if len(result.Feedback) > 0 {
		fmt.Fprintln(w, "\nFeedback:")
		for _, line := range result.Feedback {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, line := range result.Recommendations {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}
}

// renderStats writes a human-readable batch summary.
func renderStats(w io.Writer, stats *batch.Statistics) {
	fmt.Fprintf(w, "Passwords analyzed:  %d\n", stats.TotalAnalyzed)
	fmt.Fprintf(w, "Average score:       %.1f/%d\n", stats.AverageScore, analyzer.MaxTotalScore)
	fmt.Fprintf(w, "Average entropy:     %.1f bits\n", stats.AverageEntropy)
	fmt.Fprintf(w, "Common passwords:    %d\n", stats.CommonPasswordCount)
	fmt.Fprintf(w, "Patterns detected:   %d\n", stats.PatternDetectedCount)

	fmt.Fprintln(w, "\nStrength distribution:")
	for _, level := range analyzer.StrengthLevels {
		fmt.Fprintf(w, "  %-10s %d\n", level, stats.StrengthDistribution[level])
	}
}

// buildAnalyzer creates the analysis engine, loading a custom dictionary
// when one is configured.
func buildAnalyzer(cfg *config.Config) (*analyzer.Analyzer, error) {
	if cfg.Dictionary.Path == "" {
		return analyzer.New(), nil
	}
	dict, err := analyzer.LoadDictionaryFile(cfg.Dictionary.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return analyzer.NewWithDictionary(dict), nil
}
