package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Character pools for each class. The special set matches the symbol
// category the analyzer scores against.
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Characters removed from each pool when ExcludeAmbiguous is set; these
// are easily confused when a password is read or transcribed.
const ambiguousChars = "loIO01|"

// ConfigError reports an impossible generator configuration. It is
// distinct from any generated value so callers cannot mistake a failed
// generation for a weak-but-valid password.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid generator configuration: " + e.Reason
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Config controls password and passphrase generation.
type Config struct {
	// Length is the password length in characters (password mode).
	Length int

	// Character classes to include (password mode). At least one must
	// be enabled.
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool

	// ExcludeAmbiguous removes easily confused characters (0, O, l, 1,
	// I, o, |) from every pool.
	ExcludeAmbiguous bool

	// WordCount is the number of words (passphrase mode).
	WordCount int

	// Separator joins passphrase words. May be empty.
	Separator string
}

// DefaultConfig returns the default generation settings: 16 characters
// drawing on all four classes, four-word passphrases joined by dashes.
func DefaultConfig() Config {
	return Config{
		Length:    16,
		Lower:     true,
		Upper:     true,
		Digits:    true,
		Symbols:   true,
		WordCount: 4,
		Separator: "-",
	}
}

// pools returns the enabled character pools after ambiguity filtering.
func (c Config) pools() []string {
	strip := func(pool string) string {
		if !c.ExcludeAmbiguous {
			return pool
		}
		var b strings.Builder
		for _, r := range pool {
			if !strings.ContainsRune(ambiguousChars, r) {
				b.WriteRune(r)
			}
		}
		return b.String()
	}

	var pools []string
	if c.Lower {
		pools = append(pools, strip(lowerChars))
	}
	if c.Upper {
		pools = append(pools, strip(upperChars))
	}
	if c.Digits {
		pools = append(pools, strip(digitChars))
	}
	if c.Symbols {
		pools = append(pools, strip(specialChars))
	}
	return pools
}

// Generate produces a random password per the configuration. The result
// is guaranteed to contain at least one character from every enabled
// class and to have exactly cfg.Length characters.
func Generate(cfg Config) (string, error) {
	pools := cfg.pools()
	if len(pools) == 0 {
		return "", &ConfigError{Reason: "at least one character class must be enabled"}
	}
	if cfg.Length < 1 {
		return "", &ConfigError{Reason: fmt.Sprintf("length must be positive, got %d", cfg.Length)}
	}
	if cfg.Length < len(pools) {
		return "", &ConfigError{Reason: fmt.Sprintf(
			"length %d cannot fit one character from each of %d enabled classes",
			cfg.Length, len(pools))}
	}

	union := strings.Join(pools, "")
	chars := make([]byte, 0, cfg.Length)

	// One mandatory character per enabled class, then uniform fill
	// from the union pool.
	for _, pool := range pools {
		b, err := secureChoice(pool)
		if err != nil {
			return "", err
		}
		chars = append(chars, b)
	}
	for len(chars) < cfg.Length {
		b, err := secureChoice(union)
		if err != nil {
			return "", err
		}
		chars = append(chars, b)
	}

	if err := secureShuffle(chars); err != nil {
		return "", err
	}
	return string(chars), nil
}

// GenerateMultiple produces count independent passwords.
func GenerateMultiple(cfg Config, count int) ([]string, error) {
	if count < 1 {
		return nil, &ConfigError{Reason: fmt.Sprintf("count must be positive, got %d", count)}
	}
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password, err := Generate(cfg)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, password)
	}
	return passwords, nil
}

// secureIndex returns a uniform random index in [0, n) from crypto/rand.
func secureIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read secure random source: %w", err)
	}
	return int(v.Int64()), nil
}

// secureChoice picks one byte uniformly from the pool.
func secureChoice(pool string) (byte, error) {
	i, err := secureIndex(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

// secureShuffle performs a Fisher-Yates shuffle drawing every swap index
// from crypto/rand.
func secureShuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := secureIndex(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
