package batch

import "passfort-hq/passfort/pkg/analyzer"

// Statistics aggregates analysis results across a batch.
type Statistics struct {
	// TotalAnalyzed is the number of passwords analyzed.
	TotalAnalyzed int `json:"total_analyzed"`

	// StrengthDistribution counts results per strength level. Every
	// level is present, including zero counts.
	StrengthDistribution map[analyzer.Strength]int `json:"strength_distribution"`

	// AverageScore is the running mean of total scores.
	AverageScore float64 `json:"average_score"`

	// AverageEntropy is the running mean of entropy bits.
	AverageEntropy float64 `json:"average_entropy"`

	// CommonPasswordCount is how many results matched the common
	// password dictionary.
	CommonPasswordCount int `json:"common_password_count"`

	// PatternDetectedCount is how many results had at least one
	// pattern finding.
	PatternDetectedCount int `json:"pattern_detected_count"`
}

// NewStatistics returns empty statistics with every strength level
// initialized to zero.
func NewStatistics() *Statistics {
	dist := make(map[analyzer.Strength]int, len(analyzer.StrengthLevels))
	for _, level := range analyzer.StrengthLevels {
		dist[level] = 0
	}
	return &Statistics{StrengthDistribution: dist}
}

// Add folds one result into the statistics, updating the running
// averages incrementally.
func (s *Statistics) Add(result *analyzer.Result) {
	s.TotalAnalyzed++
	s.StrengthDistribution[result.Strength]++

	n := float64(s.TotalAnalyzed)
	s.AverageScore += (result.TotalScore - s.AverageScore) / n
	s.AverageEntropy += (result.EntropyBits - s.AverageEntropy) / n

	if result.IsCommon {
		s.CommonPasswordCount++
	}
	if len(result.Patterns) > 0 {
		s.PatternDetectedCount++
	}
}
