package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

// defaultCommonPasswords is the built-in weak password dictionary,
// drawn from the most frequently leaked passwords.
var defaultCommonPasswords = []string{
	"password", "123456", "12345678", "qwerty", "abc123", "monkey",
	"1234567890", "letmein", "trustno1", "dragon", "baseball", "111111",
	"iloveyou", "master", "sunshine", "ashley", "bailey", "passw0rd",
	"shadow", "123123", "654321", "superman", "qazwsx", "michael",
	"football", "password1", "admin", "welcome", "login", "test",
	"charlie", "jordan", "freedom", "family", "robert", "thomas",
	"hockey", "ranger", "daniel", "pantera", "tigger", "doctor",
	"gateway", "guestgue", "internet", "service", "eternal",
	"smiles", "local", "biteme", "2000", "chelsea", "access",
	"yankees", "987654321", "dallas", "austin", "thunder", "taylor",
}

// trailingSuffixRe strips the trailing run of digits and symbols used by
// the suffix-stripped variant check ("password123!" -> "password").
var trailingSuffixRe = regexp.MustCompile(`[0-9!@#$%^&*()_+\-=\[\]{}|;:,.<>?]*$`)

// minPrefixLen is the shortest dictionary entry considered for the
// prefix rule; shorter entries fire on too many unrelated passwords.
const minPrefixLen = 4

// Common-password match rules, in priority order.
const (
	// MatchExact means the lowercased password is a dictionary entry.
	MatchExact = "exact"
	// MatchVariant means the password is a dictionary entry plus a
	// trailing digit/symbol suffix.
	MatchVariant = "variant"
	// MatchPrefix means the password starts with a dictionary entry.
	MatchPrefix = "prefix"
)

// CommonMatch reports the outcome of the common-password check.
type CommonMatch struct {
	// Common is true when any rule matched.
	Common bool
	// Rule is the rule that fired: MatchExact, MatchVariant or
	// MatchPrefix. Empty when Common is false.
	Rule string
	// Base is the dictionary entry behind the match.
	Base string
}

// Feedback renders the human-readable assessment for the match.
func (m CommonMatch) Feedback() string {
	switch m.Rule {
	case MatchExact:
		return "this is a common password - easily cracked"
	case MatchVariant:
		return fmt.Sprintf("based on common password %q - still weak", m.Base)
	case MatchPrefix:
		return fmt.Sprintf("starts with common password %q - predictable", m.Base)
	default:
		return "not found in common passwords database"
	}
}

// Dictionary is an immutable set of known weak passwords. Construct one
// with NewDictionary or LoadDictionaryFile; there is no mutation path,
// so a Dictionary is safe for concurrent use.
type Dictionary struct {
	set     map[string]struct{}
	entries []string // sorted, for deterministic prefix scanning
}

// DefaultDictionary returns the built-in weak password dictionary.
func DefaultDictionary() *Dictionary {
	return NewDictionary(defaultCommonPasswords)
}

// NewDictionary builds a dictionary from the given entries. Entries are
// lowercased and deduplicated; blank entries are dropped.
func NewDictionary(entries []string) *Dictionary {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	sorted := make([]string, 0, len(set))
	for e := range set {
		sorted = append(sorted, e)
	}
	sort.Strings(sorted)
	return &Dictionary{set: set, entries: sorted}
}

// ParseDictionary reads a dictionary from r, one entry per line. Blank
// lines and lines starting with '#' are ignored.
func ParseDictionary(r io.Reader) (*Dictionary, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return NewDictionary(entries), nil
}

// LoadDictionaryFile reads a dictionary file from disk.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file %q: %w", path, err)
	}
	defer f.Close()
	dict, err := ParseDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary file %q: %w", path, err)
	}
	return dict, nil
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Contains reports whether the exact (lowercased) entry is present.
func (d *Dictionary) Contains(entry string) bool {
	_, ok := d.set[strings.ToLower(entry)]
	return ok
}

// Match runs the three escalating common-password checks against the
// password. The first rule that fires wins: an exact hit beats a
// suffix-stripped variant, which beats a prefix match. The prefix scan
// walks the sorted entry list, so the reported base is deterministic.
func (d *Dictionary) Match(password string) CommonMatch {
	lower := strings.ToLower(password)

	if _, ok := d.set[lower]; ok {
		return CommonMatch{Common: true, Rule: MatchExact, Base: lower}
	}

	base := trailingSuffixRe.ReplaceAllString(lower, "")
	if base != "" {
		if _, ok := d.set[base]; ok {
			return CommonMatch{Common: true, Rule: MatchVariant, Base: base}
		}
	}

	for _, entry := range d.entries {
		if len(entry) >= minPrefixLen && len(entry) < len(lower) && strings.HasPrefix(lower, entry) {
			return CommonMatch{Common: true, Rule: MatchPrefix, Base: entry}
		}
	}

	return CommonMatch{}
}
