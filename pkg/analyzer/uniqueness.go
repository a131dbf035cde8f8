package analyzer

// UniquenessScore scores character variety as the ratio of distinct
// characters to total length, scaled onto [0, MaxUniquenessScore].
// The empty password scores 0.
func UniquenessScore(password string) float64 {
	if len(password) == 0 {
		return 0
	}
	distinct := make(map[rune]struct{}, len(password))
	for _, r := range password {
		distinct[r] = struct{}{}
	}
	score := float64(len(distinct)) / float64(len(password)) * MaxUniquenessScore
	if score > MaxUniquenessScore {
		score = MaxUniquenessScore
	}
	return score
}
