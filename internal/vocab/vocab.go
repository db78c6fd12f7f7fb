package vocab

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_vocab.yaml
var defaultVocab []byte

// Vocabulary is the static set of canonical skill phrases plus the stop-term
// denylist used to filter noisy extractions. Phrases keep their declared
// order; lookups are case-insensitive.
type Vocabulary struct {
	Phrases   []string `yaml:"skills"`
	StopTerms []string `yaml:"stop_terms"`

	stop map[string]struct{}
}

// Default returns the vocabulary embedded in the binary.
func Default() (*Vocabulary, error) {
	return parse(defaultVocab)
}

// LoadFile reads a vocabulary YAML file from path.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read vocabulary %s: %w", path, err)
	}
	v, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid vocabulary %s: %w", path, err)
	}
	return v, nil
}

func parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid vocabulary YAML: %w", err)
	}
	if len(v.Phrases) == 0 {
		return nil, fmt.Errorf("vocabulary contains no skill phrases")
	}

	seen := make(map[string]struct{}, len(v.Phrases))
	phrases := make([]string, 0, len(v.Phrases))
	for _, p := range v.Phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		phrases = append(phrases, p)
	}
	v.Phrases = phrases

	v.stop = make(map[string]struct{}, len(v.StopTerms))
	terms := make([]string, 0, len(v.StopTerms))
	for _, t := range v.StopTerms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := v.stop[t]; ok {
			continue
		}
		v.stop[t] = struct{}{}
		terms = append(terms, t)
	}
	v.StopTerms = terms

	return &v, nil
}

// IsStopTerm reports whether s (case-insensitive) is a denylisted term.
func (v *Vocabulary) IsStopTerm(s string) bool {
	_, ok := v.stop[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// ContainsStopTerm reports whether any denylisted term occurs as a substring
// of s (case-insensitive). Substring semantics are intentional: a chunk
// mentioning a denylisted term anywhere is considered noise.
func (v *Vocabulary) ContainsStopTerm(s string) bool {
	s = strings.ToLower(s)
	for _, t := range v.StopTerms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
