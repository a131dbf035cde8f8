package analyzer

import (
	"fmt"
	"math"
	"strings"
)

// Entropy bucket boundaries (bits) for the 0-30 point entropy score.
var entropyScoreTiers = []struct {
	minBits float64
	score   int
}{
	{70, 30},
	{50, 25},
	{35, 20},
	{25, 15},
	{15, 10},
}

// Display thresholds (bits) for the qualitative entropy label. These are
// deliberately distinct from the scoring tiers above.
const (
	entropyExcellentBits = 60
	entropyGoodBits      = 40
	entropyFairBits      = 25
)

// EntropyBits estimates the brute-force search space of a password in
// bits: length x log2(alphabet size), where the alphabet size is inferred
// from the categories actually present in the password. A five-digit PIN
// is therefore scored against an alphabet of 10, not of the full
// keyboard. Returns 0 for empty passwords and single-character alphabets.
func EntropyBits(password string) (float64, Profile) {
	profile := Inspect(password)
	if len(password) == 0 || profile.AlphabetSize <= 1 {
		return 0, profile
	}
	return float64(len(password)) * math.Log2(float64(profile.AlphabetSize)), profile
}

// EntropyScore maps entropy bits onto the 0-30 point entropy bucket.
func EntropyScore(bits float64) int {
	for _, tier := range entropyScoreTiers {
		if bits >= tier.minBits {
			return tier.score
		}
	}
	return 5
}

// EntropyFeedback renders the human-readable entropy assessment.
func EntropyFeedback(bits float64, profile Profile) string {
	if profile.AlphabetSize == 0 {
		return "empty password has no entropy"
	}
	categories := strings.Join(profile.Categories(), ", ")
	switch {
	case bits >= entropyExcellentBits:
		return fmt.Sprintf("excellent entropy: %.1f bits (%s)", bits, categories)
	case bits >= entropyGoodBits:
		return fmt.Sprintf("good entropy: %.1f bits (%s)", bits, categories)
	case bits >= entropyFairBits:
		return fmt.Sprintf("fair entropy: %.1f bits (%s)", bits, categories)
	default:
		return fmt.Sprintf("low entropy: %.1f bits (%s)", bits, categories)
	}
}
