package analyzer

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeScoreBounds(t *testing.T) {
	a := New()
	inputs := []string{
		"",
		"a",
		"123456",
		"password123",
		"qwertyqwertyqwerty",
		"X9$mK#nP2@vL8*qR",
		strings.Repeat("aaa111", 50),
		strings.Repeat("Xk9$mQ2@vL8qR!", 20),
	}
	for _, password := range inputs {
		result := a.Analyze(password)
		if result.TotalScore < 0 || result.TotalScore > MaxTotalScore {
			t.Errorf("Analyze(%q).TotalScore = %.1f, want within [0, %d]",
				password, result.TotalScore, MaxTotalScore)
		}
		if result.EntropyBits < 0 {
			t.Errorf("Analyze(%q).EntropyBits = %.1f, want >= 0", password, result.EntropyBits)
		}
	}
}

func TestAnalyzeEmptyPassword(t *testing.T) {
	result := New().Analyze("")
	if result.EntropyBits != 0 {
		t.Errorf("EntropyBits = %.1f, want 0", result.EntropyBits)
	}
	if result.Length != 0 {
		t.Errorf("Length = %d, want 0", result.Length)
	}
	if result.Strength != StrengthVeryWeak {
		t.Errorf("Strength = %q, want %q", result.Strength, StrengthVeryWeak)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := New()
	first := a.Analyze("password123")
	second := a.Analyze("password123")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyzeCommonPassword(t *testing.T) {
	a := New()
	if !a.Analyze("123456").IsCommon {
		t.Error("Analyze(123456).IsCommon = false, want true")
	}
	if a.Analyze("Xk9$mQ2@vL8qR").IsCommon {
		t.Error("Analyze(Xk9$mQ2@vL8qR).IsCommon = true, want false")
	}
}

func TestAnalyzeCommonVariantScenario(t *testing.T) {
	result := New().Analyze("password123")

	if !result.IsCommon {
		t.Error("IsCommon = false, want true (variant of password)")
	}
	wantEntropy := 11 * math.Log2(36)
	if math.Abs(result.EntropyBits-wantEntropy) > 0.1 {
		t.Errorf("EntropyBits = %.1f, want %.1f", result.EntropyBits, wantEntropy)
	}
	if result.AlphabetSize != 36 {
		t.Errorf("AlphabetSize = %d, want 36", result.AlphabetSize)
	}
	if result.Strength != StrengthWeak && result.Strength != StrengthMedium {
		t.Errorf("Strength = %q, want WEAK or MEDIUM", result.Strength)
	}
}

func TestAnalyzeExcellentScenario(t *testing.T) {
	result := New().Analyze("X9$mK#nP2@vL8*qR")

	if result.Strength != StrengthExcellent {
		t.Errorf("Strength = %q, want %q (score %.1f)", result.Strength, StrengthExcellent, result.TotalScore)
	}
	wantEntropy := 16 * math.Log2(88)
	if math.Abs(result.EntropyBits-wantEntropy) > 0.1 {
		t.Errorf("EntropyBits = %.1f, want %.1f", result.EntropyBits, wantEntropy)
	}
	if result.IsCommon {
		t.Error("IsCommon = true, want false")
	}
	if len(result.Patterns) != 0 {
		t.Errorf("Patterns = %v, want empty", result.Patterns)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want empty", result.Recommendations)
	}
}

func TestLengthScoreMonotonic(t *testing.T) {
	previous := 0
	for length := 0; length <= 64; length++ {
		score := LengthScore(length)
		if score < previous {
			t.Fatalf("LengthScore(%d) = %d, less than LengthScore(%d) = %d",
				length, score, length-1, previous)
		}
		previous = score
	}
	if LengthScore(16) != MaxLengthScore {
		t.Errorf("LengthScore(16) = %d, want %d", LengthScore(16), MaxLengthScore)
	}
}

func TestAnalyzePatternPenaltyCapped(t *testing.T) {
	result := New().Analyze("qwertyasdfghzxcvbnabcdefgh1234567890aaa")
	if result.PatternPenalty < -MaxPatternPenalty {
		t.Errorf("PatternPenalty = %d, want >= %d", result.PatternPenalty, -MaxPatternPenalty)
	}
	if len(result.Patterns) < 6 {
		t.Errorf("expected many pattern findings, got %v", result.Patterns)
	}
}

func TestAnalyzeBreakdownComponents(t *testing.T) {
	result := New().Analyze("password123")
	for _, component := range []string{
		"length", "character_types", "entropy", "common_password", "patterns", "uniqueness",
	} {
		if _, ok := result.Breakdown[component]; !ok {
			t.Errorf("Breakdown missing component %q: %v", component, result.Breakdown)
		}
	}
	if result.Breakdown["common_password"] != "-20/0 (PENALTY)" {
		t.Errorf("common_password breakdown = %q", result.Breakdown["common_password"])
	}
}

func TestAnalyzeRecommendations(t *testing.T) {
	result := New().Analyze("abc")
	joined := strings.Join(result.Recommendations, "\n")
	for _, want := range []string{
		"use at least 12 characters",
		"add uppercase letters",
		"add numbers",
		"add special characters",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Recommendations missing %q: %v", want, result.Recommendations)
		}
	}
	if strings.Contains(joined, "add lowercase letters") {
		t.Errorf("unexpected lowercase recommendation for %q", "abc")
	}
}

func TestStrengthForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Strength
	}{
		{0, StrengthVeryWeak},
		{24.9, StrengthVeryWeak},
		{25, StrengthWeak},
		{45, StrengthMedium},
		{65, StrengthStrong},
		{80, StrengthExcellent},
		{100, StrengthExcellent},
	}
	for _, tt := range tests {
		if got := StrengthForScore(tt.score); got != tt.want {
			t.Errorf("StrengthForScore(%.1f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
