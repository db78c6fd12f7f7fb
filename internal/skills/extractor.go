package skills

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/jobsync/skillmatch/internal/nlp"
	"github.com/jobsync/skillmatch/internal/vocab"
)

// DefaultFuzzyThreshold is the minimum partial-ratio score (0-100, exclusive)
// for a vocabulary phrase to count as a fuzzy hit. It is a tunable, not a
// guaranteed-correct constant.
const DefaultFuzzyThreshold = 85

// Extractor turns raw text into a deduplicated, sorted list of skill tokens.
// It combines exact phrase matching against the vocabulary, fuzzy matching
// over lemmatized tokens, and a noun-chunk heuristic.
type Extractor struct {
	vocab     *vocab.Vocabulary
	annotator *nlp.Annotator

	// FuzzyThreshold overrides DefaultFuzzyThreshold when > 0.
	FuzzyThreshold int
}

// NewExtractor returns an Extractor over the given vocabulary and annotator.
func NewExtractor(v *vocab.Vocabulary, ann *nlp.Annotator) *Extractor {
	return &Extractor{
		vocab:          v,
		annotator:      ann,
		FuzzyThreshold: DefaultFuzzyThreshold,
	}
}

// Extract returns the sorted, deduplicated skill tokens found in text.
// Empty or whitespace-only input yields an empty, non-nil slice.
func (e *Extractor) Extract(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	text = strings.ToLower(text)
	ann, err := e.annotator.Annotate(text)
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{})

	for _, hit := range e.exactMatches(ann.Tokens) {
		found[hit] = struct{}{}
	}
	for _, chunk := range ann.NounChunks {
		if e.vocab.ContainsStopTerm(chunk) {
			continue
		}
		found[chunk] = struct{}{}
	}
	for _, hit := range e.fuzzyMatches(ann.Tokens) {
		found[hit] = struct{}{}
	}

	out := make([]string, 0, len(found))
	for s := range found {
		if len(s) <= 2 || e.vocab.IsStopTerm(s) {
			continue
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// exactMatches scans the token stream for occurrences of vocabulary phrases,
// with phrase boundaries aligned to token boundaries.
func (e *Extractor) exactMatches(tokens []nlp.Token) []string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.Text
	}

	var hits []string
	for _, phrase := range e.vocab.Phrases {
		words := strings.Fields(phrase)
		if len(words) == 0 {
			continue
		}
		for i := 0; i+len(words) <= len(texts); i++ {
			ok := true
			for j, w := range words {
				if texts[i+j] != w {
					ok = false
					break
				}
			}
			if ok {
				hits = append(hits, phrase)
				break
			}
		}
	}
	return hits
}

// fuzzyMatches returns every vocabulary phrase whose partial ratio against
// any non-stop, non-punctuation lemma exceeds the threshold. The phrase, not
// the token, is reported. Cost is O(|vocabulary| x |tokens|), acceptable for
// a bounded vocabulary and typical document lengths.
func (e *Extractor) fuzzyMatches(tokens []nlp.Token) []string {
	threshold := e.FuzzyThreshold
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}

	lemmas := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Stop || t.Punct {
			continue
		}
		lemmas = append(lemmas, t.Lemma)
	}

	var hits []string
	for _, phrase := range e.vocab.Phrases {
		for _, lemma := range lemmas {
			if fuzzy.PartialRatio(phrase, lemma) > threshold {
				hits = append(hits, phrase)
				break
			}
		}
	}
	return hits
}
