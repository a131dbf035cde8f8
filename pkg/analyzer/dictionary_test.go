package analyzer

import (
	"strings"
	"testing"
)

func TestDictionaryMatch(t *testing.T) {
	dict := DefaultDictionary()

	tests := []struct {
		name     string
		password string
		common   bool
		rule     string
		base     string
	}{
		{
			name:     "exact match",
			password: "123456",
			common:   true,
			rule:     MatchExact,
			base:     "123456",
		},
		{
			name:     "exact match is case-insensitive",
			password: "PassWord",
			common:   true,
			rule:     MatchExact,
			base:     "password",
		},
		{
			name:     "digit suffix variant",
			password: "password123",
			common:   true,
			rule:     MatchVariant,
			base:     "password",
		},
		{
			name:     "symbol suffix variant",
			password: "dragon!!",
			common:   true,
			rule:     MatchVariant,
			base:     "dragon",
		},
		{
			name:     "prefix match",
			password: "monkeybusiness",
			common:   true,
			rule:     MatchPrefix,
			base:     "monkey",
		},
		{
			name:     "random password is not common",
			password: "Xk9$mQ2@vL8qR",
			common:   false,
		},
		{
			name:     "empty password is not common",
			password: "",
			common:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dict.Match(tt.password)
			if got.Common != tt.common {
				t.Fatalf("Match(%q).Common = %v, want %v", tt.password, got.Common, tt.common)
			}
			if got.Rule != tt.rule {
				t.Errorf("Match(%q).Rule = %q, want %q", tt.password, got.Rule, tt.rule)
			}
			if tt.common && got.Base != tt.base {
				t.Errorf("Match(%q).Base = %q, want %q", tt.password, got.Base, tt.base)
			}
		})
	}
}

func TestDictionaryMatchPriority(t *testing.T) {
	// "password1" is itself a dictionary entry and a variant of
	// "password"; the exact rule must win.
	got := DefaultDictionary().Match("password1")
	if got.Rule != MatchExact {
		t.Errorf("Match(%q).Rule = %q, want %q", "password1", got.Rule, MatchExact)
	}
}

func TestParseDictionary(t *testing.T) {
	input := "# comment\nHorse\n\nstaple\nhorse\n"
	dict, err := ParseDictionary(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseDictionary: %v", err)
	}
	if dict.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (deduplicated, comments skipped)", dict.Len())
	}
	if !dict.Contains("HORSE") {
		t.Error("expected case-insensitive Contains to report horse")
	}
	if dict.Contains("# comment") {
		t.Error("comment line should not be an entry")
	}
}

func TestLoadDictionaryFileMissing(t *testing.T) {
	if _, err := LoadDictionaryFile("/nonexistent/dictionary.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
