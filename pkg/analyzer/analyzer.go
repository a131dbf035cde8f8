package analyzer

import "fmt"

// Length bucket boundaries for the 0-15 point length score.
var lengthScoreTiers = []struct {
	minLength int
	score     int
}{
	{16, 15},
	{12, 12},
	{8, 8},
	{6, 4},
}

// Diversity points per category present. Symbols are weighted double
// because they expand the search space the most in practice.
const (
	categoryScore = 5
	symbolScore   = 10
)

// recommendedMinLength is the length below which a longer password is
// recommended, independent of the score the password achieved.
const recommendedMinLength = 12

// recommendedMinEntropy is the entropy floor below which more
// randomness is recommended.
const recommendedMinEntropy = 40

// Analyzer is the scoring engine. The zero value is not usable;
// construct one with New or NewWithDictionary. An Analyzer is immutable
// and safe for concurrent use.
type Analyzer struct {
	dict *Dictionary
}

// New returns an Analyzer backed by the built-in weak password
// dictionary.
func New() *Analyzer {
	return NewWithDictionary(DefaultDictionary())
}

// NewWithDictionary returns an Analyzer backed by a custom dictionary.
// A nil dictionary falls back to the built-in one.
func NewWithDictionary(dict *Dictionary) *Analyzer {
	if dict == nil {
		dict = DefaultDictionary()
	}
	return &Analyzer{dict: dict}
}

// Dictionary returns the dictionary backing this analyzer.
func (a *Analyzer) Dictionary() *Dictionary {
	return a.dict
}

// LengthScore maps a password length onto the 0-15 point length bucket.
func LengthScore(length int) int {
	for _, tier := range lengthScoreTiers {
		if length >= tier.minLength {
			return tier.score
		}
	}
	return 0
}

// DiversityScore scores the character categories present: 5 points each
// for lowercase, uppercase and digits, 10 for symbols.
func DiversityScore(profile Profile) int {
	score := 0
	if profile.HasLower {
		score += categoryScore
	}
	if profile.HasUpper {
		score += categoryScore
	}
	if profile.HasDigit {
		score += categoryScore
	}
	if profile.HasSymbol {
		score += symbolScore
	}
	return score
}

// Analyze runs every scoring component against the password and
// aggregates the results into a weighted 0-100 total. It is a pure
// function over the password and the analyzer's immutable dictionary:
// identical input always yields an identical Result. It never fails;
// degenerate inputs such as the empty string produce defined low scores.
func (a *Analyzer) Analyze(password string) *Result {
	entropy, profile := EntropyBits(password)
	match := a.dict.Match(password)
	patterns := DetectPatterns(password)

	lengthScore := LengthScore(len(password))
	diversityScore := DiversityScore(profile)
	entropyScore := EntropyScore(entropy)
	commonPenalty := 0
	if match.Common {
		commonPenalty = -CommonPenalty
	}
	patternPenalty := -patterns.Penalty
	uniquenessScore := UniquenessScore(password)

	total := float64(lengthScore+diversityScore+entropyScore+commonPenalty+patternPenalty) + uniquenessScore
	if total < 0 {
		total = 0
	}
	if total > MaxTotalScore {
		total = MaxTotalScore
	}

	breakdown := map[string]string{
		"length":          fmt.Sprintf("%d/%d", lengthScore, MaxLengthScore),
		"character_types": fmt.Sprintf("%d/%d", diversityScore, MaxDiversityScore),
		"entropy":         fmt.Sprintf("%d/%d (%.1f bits)", entropyScore, MaxEntropyScore, entropy),
		"common_password": penaltyBreakdown(commonPenalty),
		"patterns":        penaltyBreakdown(patternPenalty),
		"uniqueness":      fmt.Sprintf("%.1f/%d", uniquenessScore, MaxUniquenessScore),
	}

	feedback := make([]string, 0, 2+len(patterns.Feedback))
	feedback = append(feedback, EntropyFeedback(entropy, profile))
	feedback = append(feedback, match.Feedback())
	feedback = append(feedback, patterns.Feedback...)

	return &Result{
		Length:          len(password),
		Strength:        StrengthForScore(total),
		TotalScore:      total,
		MaxScore:        MaxTotalScore,
		EntropyBits:     entropy,
		AlphabetSize:    profile.AlphabetSize,
		IsCommon:        match.Common,
		Patterns:        patterns.Findings,
		PatternPenalty:  patternPenalty,
		Breakdown:       breakdown,
		Feedback:        feedback,
		Recommendations: recommendations(password, profile, entropy, match.Common),
	}
}

func penaltyBreakdown(penalty int) string {
	if penalty < 0 {
		return fmt.Sprintf("%d/0 (PENALTY)", penalty)
	}
	return "0/0"
}

// recommendations maps each missing capability to one concrete
// improvement, in a fixed order.
func recommendations(password string, profile Profile, entropy float64, isCommon bool) []string {
	var recs []string
	if len(password) < recommendedMinLength {
		recs = append(recs, "use at least 12 characters")
	}
	if !profile.HasUpper {
		recs = append(recs, "add uppercase letters")
	}
	if !profile.HasLower {
		recs = append(recs, "add lowercase letters")
	}
	if !profile.HasDigit {
		recs = append(recs, "add numbers")
	}
	if !profile.HasSymbol {
		recs = append(recs, "add special characters")
	}
	if entropy < recommendedMinEntropy {
		recs = append(recs, "increase randomness - avoid predictable patterns")
	}
	if isCommon {
		recs = append(recs, "avoid common passwords and their variations")
	}
	return recs
}
