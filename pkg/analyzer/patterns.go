package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// keyboardPatterns are adjacent-key runs checked as case-insensitive
// substrings. Longer variants are listed alongside their shorter
// prefixes so the finding names the most specific run.
var keyboardPatterns = []string{
	"qwerty", "qwertyuiop", "asdfgh", "asdfghjkl", "zxcvbn", "zxcvbnm",
	"1234567890", "0987654321", "abcdefgh", "zyxwvuts",
}

// numericSuffixRe captures a trailing run of three or more digits.
var numericSuffixRe = regexp.MustCompile(`[0-9]{3,}$`)

// Penalty weights per fired rule.
const (
	keyboardPenalty      = 2
	sequencePenalty      = 2
	maxRepetitionPenalty = 4
	numericSuffixPenalty = 1

	// minSequenceLen is the shortest ascending/descending run reported.
	minSequenceLen = 3
	// minRepetitionLen is the shortest same-character run reported.
	minRepetitionLen = 3
)

// PatternReport is the outcome of running every pattern rule.
type PatternReport struct {
	// Findings lists each fired rule as "kind: detail", in detection
	// order. All firing rules are collected, not just the first.
	Findings []string

	// Penalty is the summed rule penalty, capped at MaxPatternPenalty.
	Penalty int

	// Feedback contains one human-readable line per finding, or a
	// single all-clear line when nothing fired.
	Feedback []string
}

// DetectPatterns runs every pattern rule against the password and
// collects all that fire. Keyboard and sequence rules are
// case-insensitive; repetition runs are matched on the raw input.
func DetectPatterns(password string) PatternReport {
	lower := strings.ToLower(password)
	var report PatternReport
	penalty := 0

	for _, pattern := range keyboardPatterns {
		if strings.Contains(lower, pattern) {
			report.Findings = append(report.Findings, "keyboard: "+pattern)
			report.Feedback = append(report.Feedback, fmt.Sprintf("contains keyboard pattern %q", pattern))
			penalty += keyboardPenalty
		}
	}

	for _, run := range sequentialRuns(lower) {
		report.Findings = append(report.Findings, "sequence: "+run)
		report.Feedback = append(report.Feedback, fmt.Sprintf("contains sequential pattern %q", run))
		penalty += sequencePenalty
	}

	for _, run := range repeatedRuns(password) {
		report.Findings = append(report.Findings,
			fmt.Sprintf("repetition: %cx%d", run.char, run.length))
		report.Feedback = append(report.Feedback,
			fmt.Sprintf("contains repeated character %q x%d", run.char, run.length))
		penalty += min(run.length, maxRepetitionPenalty)
	}

	if suffix := numericSuffixRe.FindString(password); suffix != "" && isSimpleDigitSequence(suffix) {
		report.Findings = append(report.Findings, "number suffix: "+suffix)
		report.Feedback = append(report.Feedback,
			fmt.Sprintf("simple number sequence at end: %q", suffix))
		penalty += numericSuffixPenalty
	}

	if len(report.Findings) == 0 {
		report.Feedback = append(report.Feedback, "no obvious patterns detected")
	}

	report.Penalty = min(penalty, MaxPatternPenalty)
	return report
}

// sequentialRuns returns every maximal run of length >= minSequenceLen
// whose character codes step by exactly +1 or exactly -1.
func sequentialRuns(s string) []string {
	var runs []string
	b := []byte(s)
	for i := 0; i < len(b); {
		// Try ascending then descending from position i.
		asc := runLength(b[i:], 1)
		desc := runLength(b[i:], -1)
		n := max(asc, desc)
		if n >= minSequenceLen {
			runs = append(runs, string(b[i:i+n]))
			i += n
			continue
		}
		i++
	}
	return runs
}

// runLength counts consecutive bytes stepping by delta, starting at b[0].
func runLength(b []byte, delta int) int {
	n := 1
	for n < len(b) && int(b[n]) == int(b[n-1])+delta {
		n++
	}
	return n
}

type repetition struct {
	char   byte
	length int
}

// repeatedRuns returns every maximal run of the same character with
// length >= minRepetitionLen. Implemented as a scan because RE2 has no
// backreferences.
func repeatedRuns(s string) []repetition {
	var runs []repetition
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if j-i >= minRepetitionLen {
			runs = append(runs, repetition{char: s[i], length: j - i})
		}
		i = j
	}
	return runs
}

// isSimpleDigitSequence reports whether the digits ascend or descend by
// exactly one throughout (e.g. "123", "987").
func isSimpleDigitSequence(digits string) bool {
	if len(digits) < minSequenceLen {
		return false
	}
	ascending, descending := true, true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[i-1]+1 {
			ascending = false
		}
		if digits[i] != digits[i-1]-1 {
			descending = false
		}
	}
	return ascending || descending
}
