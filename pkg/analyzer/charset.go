package analyzer

import "strings"

// SpecialChars is the fixed set of characters counted as the symbol
// category. Characters outside all four categories (spaces, control
// characters, non-ASCII) contribute nothing to the alphabet size.
const SpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// Per-category alphabet sizes used for entropy estimation.
const (
	lowerAlphabetSize  = 26
	upperAlphabetSize  = 26
	digitAlphabetSize  = 10
	symbolAlphabetSize = len(SpecialChars)
)

// Profile describes which character categories appear in a password and
// the alphabet size they imply.
type Profile struct {
	HasLower  bool
	HasUpper  bool
	HasDigit  bool
	HasSymbol bool

	// AlphabetSize is the sum of the category sizes for every category
	// present. Zero when no category is present (e.g. empty password).
	AlphabetSize int
}

// Categories returns the names of the categories present, in a fixed
// order, for use in feedback messages.
func (p Profile) Categories() []string {
	var names []string
	if p.HasLower {
		names = append(names, "lowercase")
	}
	if p.HasUpper {
		names = append(names, "uppercase")
	}
	if p.HasDigit {
		names = append(names, "digits")
	}
	if p.HasSymbol {
		names = append(names, "special characters")
	}
	return names
}

// Count returns how many categories are present.
func (p Profile) Count() int {
	n := 0
	for _, present := range []bool{p.HasLower, p.HasUpper, p.HasDigit, p.HasSymbol} {
		if present {
			n++
		}
	}
	return n
}

// Inspect classifies the characters of a password. It is a total
// function: the empty string yields a zero Profile.
func Inspect(password string) Profile {
	var p Profile
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			p.HasLower = true
		case r >= 'A' && r <= 'Z':
			p.HasUpper = true
		case r >= '0' && r <= '9':
			p.HasDigit = true
		case strings.ContainsRune(SpecialChars, r):
			p.HasSymbol = true
		}
	}
	if p.HasLower {
		p.AlphabetSize += lowerAlphabetSize
	}
	if p.HasUpper {
		p.AlphabetSize += upperAlphabetSize
	}
	if p.HasDigit {
		p.AlphabetSize += digitAlphabetSize
	}
	if p.HasSymbol {
		p.AlphabetSize += symbolAlphabetSize
	}
	return p
}
