package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// defaultWordList backs passphrase generation when no custom list is
// supplied.
var defaultWordList = []string{
	"correct", "horse", "battery", "staple", "dragon", "wizard",
	"castle", "forest", "mountain", "ocean", "thunder", "lightning",
	"phoenix", "griffin", "crystal", "shadow", "mystic", "cosmic",
	"nebula", "quantum", "stellar", "lunar", "solar", "eclipse",
}

// GeneratePassphrase produces a passphrase of cfg.WordCount words drawn
// independently and uniformly from the default word list, joined by
// cfg.Separator.
func GeneratePassphrase(cfg Config) (string, error) {
	return GeneratePassphraseFromList(cfg, defaultWordList)
}

// GeneratePassphraseFromList is GeneratePassphrase with a custom word
// list.
func GeneratePassphraseFromList(cfg Config, words []string) (string, error) {
	if cfg.WordCount < 1 {
		return "", &ConfigError{Reason: fmt.Sprintf("word count must be positive, got %d", cfg.WordCount)}
	}
	if len(words) == 0 {
		return "", &ConfigError{Reason: "word list is empty"}
	}

	chosen := make([]string, 0, cfg.WordCount)
	for i := 0; i < cfg.WordCount; i++ {
		idx, err := secureIndex(len(words))
		if err != nil {
			return "", err
		}
		chosen = append(chosen, words[idx])
	}
	return strings.Join(chosen, cfg.Separator), nil
}

// ParseWordList reads a word list from r, one word per line. Blank
// lines and lines starting with '#' are ignored.
func ParseWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// LoadWordListFile reads a word list file from disk.
func LoadWordListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %q: %w", path, err)
	}
	defer f.Close()
	words, err := ParseWordList(f)
	if err != nil {
		return nil, fmt.Errorf("word list %q: %w", path, err)
	}
	return words, nil
}
