package analyzer

// Strength is the qualitative strength level derived from the total score.
type Strength string

const (
	// StrengthVeryWeak is assigned to scores below 25.
	StrengthVeryWeak Strength = "VERY WEAK"
	// StrengthWeak is assigned to scores in [25, 45).
	StrengthWeak Strength = "WEAK"
	// StrengthMedium is assigned to scores in [45, 65).
	StrengthMedium Strength = "MEDIUM"
	// StrengthStrong is assigned to scores in [65, 80).
	StrengthStrong Strength = "STRONG"
	// StrengthExcellent is assigned to scores of 80 and above.
	StrengthExcellent Strength = "EXCELLENT"
)

// Score thresholds for each strength level. Exposed so UI and export
// layers can render thresholds without duplicating magic numbers.
const (
	ExcellentThreshold = 80
	StrongThreshold    = 65
	MediumThreshold    = 45
	WeakThreshold      = 25
)

// Maximum points each scoring component can contribute. The common
// password and pattern components only subtract, up to the listed cap.
const (
	MaxLengthScore     = 15
	MaxDiversityScore  = 25
	MaxEntropyScore    = 30
	MaxUniquenessScore = 10
	MaxPatternPenalty  = 10
	CommonPenalty      = 20
	MaxTotalScore      = 100
)

// StrengthLevels lists all strength levels from weakest to strongest.
var StrengthLevels = []Strength{
	StrengthVeryWeak,
	StrengthWeak,
	StrengthMedium,
	StrengthStrong,
	StrengthExcellent,
}

// StrengthForScore maps a total score to its strength level.
func StrengthForScore(score float64) Strength {
	switch {
	case score >= ExcellentThreshold:
		return StrengthExcellent
	case score >= StrongThreshold:
		return StrengthStrong
	case score >= MediumThreshold:
		return StrengthMedium
	case score >= WeakThreshold:
		return StrengthWeak
	default:
		return StrengthVeryWeak
	}
}

// Result is the complete analysis of a single password. It is produced
// fresh on every Analyze call and never mutated afterwards. The password
// itself is deliberately not part of the result.
type Result struct {
	// Length is the password length in characters.
	Length int `json:"password_length"`

	// Strength is the qualitative level derived from TotalScore.
	Strength Strength `json:"strength_level"`

	// TotalScore is the weighted total, clamped to [0, MaxScore].
	TotalScore float64 `json:"total_score"`

	// MaxScore is the maximum achievable total (always 100).
	MaxScore int `json:"max_score"`

	// EntropyBits is the estimated brute-force search space in bits.
	EntropyBits float64 `json:"entropy"`

	// AlphabetSize is the inferred alphabet size used for the entropy
	// estimate (sum of the sizes of the categories actually present).
	AlphabetSize int `json:"char_set_size"`

	// IsCommon reports whether any common-password rule matched.
	IsCommon bool `json:"is_common"`

	// Patterns lists every predictable pattern found, in detection order.
	Patterns []string `json:"patterns_found"`

	// PatternPenalty is the capped pattern penalty applied to the total,
	// expressed as a non-positive number.
	PatternPenalty int `json:"pattern_penalty"`

	// Breakdown maps component names to "earned/max" point summaries.
	Breakdown map[string]string `json:"score_breakdown"`

	// Feedback contains the per-component human-readable assessments.
	Feedback []string `json:"feedback"`

	// Recommendations lists one concrete improvement per missing
	// capability. Empty for passwords that max out every component.
	Recommendations []string `json:"recommendations"`
}
