package batch

import (
	"math"
	"testing"

	"passfort-hq/passfort/pkg/analyzer"
)

func TestStatisticsAdd(t *testing.T) {
	a := analyzer.New()
	stats := NewStatistics()

	passwords := []string{"123456", "password123", "X9$mK#nP2@vL8*qR"}
	var scoreSum, entropySum float64
	for _, p := range passwords {
		result := a.Analyze(p)
		stats.Add(result)
		scoreSum += result.TotalScore
		entropySum += result.EntropyBits
	}

	if stats.TotalAnalyzed != 3 {
		t.Errorf("TotalAnalyzed = %d, want 3", stats.TotalAnalyzed)
	}
	if stats.CommonPasswordCount != 2 {
		t.Errorf("CommonPasswordCount = %d, want 2", stats.CommonPasswordCount)
	}
	if got, want := stats.AverageScore, scoreSum/3; math.Abs(got-want) > 0.001 {
		t.Errorf("AverageScore = %.3f, want %.3f", got, want)
	}
	if got, want := stats.AverageEntropy, entropySum/3; math.Abs(got-want) > 0.001 {
		t.Errorf("AverageEntropy = %.3f, want %.3f", got, want)
	}
	if stats.StrengthDistribution[analyzer.StrengthExcellent] != 1 {
		t.Errorf("excellent count = %d, want 1", stats.StrengthDistribution[analyzer.StrengthExcellent])
	}
}

func TestNewStatisticsInitializesAllLevels(t *testing.T) {
	stats := NewStatistics()
	if len(stats.StrengthDistribution) != len(analyzer.StrengthLevels) {
		t.Fatalf("distribution has %d levels, want %d",
			len(stats.StrengthDistribution), len(analyzer.StrengthLevels))
	}
	for _, level := range analyzer.StrengthLevels {
		if count, ok := stats.StrengthDistribution[level]; !ok || count != 0 {
			t.Errorf("level %q = %d present=%v, want 0 present", level, count, ok)
		}
	}
}
