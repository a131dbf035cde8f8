package history

import (
	"time"

	"github.com/google/uuid"

	"passfort-hq/passfort/pkg/analyzer"
)

// Record is one stored analysis. It carries result metadata only; the
// password is deliberately absent from the schema.
type Record struct {
	// ID is a UUID assigned at creation.
	ID string `json:"id"`

	// CreatedAt is when the analysis ran.
	CreatedAt time.Time `json:"created_at"`

	// Source identifies where the analysis came from: "cli", "batch"
	// or "server".
	Source string `json:"source"`

	// Length is the analyzed password's length.
	Length int `json:"password_length"`

	// Strength is the resulting strength level.
	Strength analyzer.Strength `json:"strength_level"`

	// Score is the total score.
	Score float64 `json:"total_score"`

	// EntropyBits is the entropy estimate.
	EntropyBits float64 `json:"entropy"`

	// IsCommon reports a common-password match.
	IsCommon bool `json:"is_common"`

	// PatternCount is the number of pattern findings.
	PatternCount int `json:"pattern_count"`
}

// NewRecord builds a Record from an analysis result.
func NewRecord(result *analyzer.Result, source string) *Record {
	return &Record{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		Source:       source,
		Length:       result.Length,
		Strength:     result.Strength,
		Score:        result.TotalScore,
		EntropyBits:  result.EntropyBits,
		IsCommon:     result.IsCommon,
		PatternCount: len(result.Patterns),
	}
}
