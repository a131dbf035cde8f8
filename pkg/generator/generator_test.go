package generator

import (
	"strings"
	"testing"
)

func TestGenerateClassGuarantee(t *testing.T) {
	cfg := Config{Length: 12, Lower: true, Upper: true, Digits: true, Symbols: true}

	// Repeat enough times that a merely-probabilistic implementation
	// would be caught.
	for i := 0; i < 200; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(password) != 12 {
			t.Fatalf("len = %d, want 12 (%q)", len(password), password)
		}
		if !strings.ContainsAny(password, lowerChars) {
			t.Fatalf("missing lowercase in %q", password)
		}
		if !strings.ContainsAny(password, upperChars) {
			t.Fatalf("missing uppercase in %q", password)
		}
		if !strings.ContainsAny(password, digitChars) {
			t.Fatalf("missing digit in %q", password)
		}
		if !strings.ContainsAny(password, specialChars) {
			t.Fatalf("missing symbol in %q", password)
		}
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "length shorter than enabled classes",
			cfg:  Config{Length: 2, Lower: true, Upper: true, Digits: true, Symbols: true},
		},
		{
			name: "zero classes enabled",
			cfg:  Config{Length: 12},
		},
		{
			name: "non-positive length",
			cfg:  Config{Length: 0, Lower: true},
		},
		{
			name: "negative length",
			cfg:  Config{Length: -3, Lower: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.cfg)
			if err == nil {
				t.Fatalf("Generate = %q, want error", password)
			}
			if !IsConfigError(err) {
				t.Errorf("error %v is not a ConfigError", err)
			}
		})
	}
}

func TestGenerateSingleClass(t *testing.T) {
	password, err := Generate(Config{Length: 8, Digits: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, r := range password {
		if r < '0' || r > '9' {
			t.Fatalf("unexpected character %q in digits-only password %q", r, password)
		}
	}
}

func TestGenerateExcludeAmbiguous(t *testing.T) {
	cfg := Config{Length: 32, Lower: true, Upper: true, Digits: true, Symbols: true, ExcludeAmbiguous: true}
	for i := 0; i < 50; i++ {
		password, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if strings.ContainsAny(password, ambiguousChars) {
			t.Fatalf("password %q contains ambiguous characters", password)
		}
	}
}

func TestGenerateMultiple(t *testing.T) {
	cfg := Config{Length: 16, Lower: true, Upper: true, Digits: true, Symbols: true}
	passwords, err := GenerateMultiple(cfg, 5)
	if err != nil {
		t.Fatalf("GenerateMultiple: %v", err)
	}
	if len(passwords) != 5 {
		t.Fatalf("len = %d, want 5", len(passwords))
	}
	seen := make(map[string]bool)
	for _, p := range passwords {
		if seen[p] {
			t.Errorf("duplicate password generated: %q", p)
		}
		seen[p] = true
	}

	if _, err := GenerateMultiple(cfg, 0); !IsConfigError(err) {
		t.Errorf("count 0: got %v, want ConfigError", err)
	}
}

func TestGeneratePassphrase(t *testing.T) {
	cfg := Config{WordCount: 4, Separator: "-"}
	passphrase, err := GeneratePassphrase(cfg)
	if err != nil {
		t.Fatalf("GeneratePassphrase: %v", err)
	}
	words := strings.Split(passphrase, "-")
	if len(words) != 4 {
		t.Fatalf("word count = %d, want 4 (%q)", len(words), passphrase)
	}
	known := make(map[string]bool, len(defaultWordList))
	for _, w := range defaultWordList {
		known[w] = true
	}
	for _, w := range words {
		if !known[w] {
			t.Errorf("word %q not from the word list", w)
		}
	}
}

func TestGeneratePassphraseInvalid(t *testing.T) {
	if _, err := GeneratePassphrase(Config{WordCount: 0}); !IsConfigError(err) {
		t.Errorf("word count 0: got %v, want ConfigError", err)
	}
	if _, err := GeneratePassphraseFromList(Config{WordCount: 3}, nil); !IsConfigError(err) {
		t.Errorf("empty list: got %v, want ConfigError", err)
	}
}

func TestParseWordList(t *testing.T) {
	input := "# comment\nalpha\n\nbeta\n"
	words, err := ParseWordList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseWordList: %v", err)
	}
	if len(words) != 2 || words[0] != "alpha" || words[1] != "beta" {
		t.Errorf("words = %v, want [alpha beta]", words)
	}
}
