package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
)

// Token is one annotated token of the input text.
type Token struct {
	Text  string
	Lemma string
	Tag   string // Penn Treebank POS tag
	Stop  bool
	Punct bool
}

// Annotation is the full linguistic annotation of one text: the token stream
// plus a noun-chunk segmentation.
type Annotation struct {
	Tokens     []Token
	NounChunks []string
}

// Annotator produces Annotations. It is safe for concurrent use; the
// underlying tagger and lemmatizer hold no per-call state.
type Annotator struct {
	lemmatizer *golem.Lemmatizer
}

// NewAnnotator loads the English lemmatizer dictionary. A load failure is an
// initialization error; callers must not serve requests without an Annotator.
func NewAnnotator() (*Annotator, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("cannot load lemmatizer dictionary: %w", err)
	}
	return &Annotator{lemmatizer: lem}, nil
}

// Annotate tokenizes and tags text, lemmatizes every token, and segments the
// token stream into noun chunks.
func (a *Annotator) Annotate(text string) (*Annotation, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("cannot annotate text: %w", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, pt := range proseTokens {
		tokens = append(tokens, Token{
			Text:  pt.Text,
			Lemma: a.lemmatizer.Lemma(pt.Text),
			Tag:   pt.Tag,
			Stop:  IsStopWord(pt.Text),
			Punct: isPunct(pt.Text),
		})
	}

	return &Annotation{
		Tokens:     tokens,
		NounChunks: nounChunks(tokens),
	}, nil
}

// nounChunks collects maximal runs of determiner/possessive/adjective/noun
// tokens, trimmed so every chunk ends in a noun.
func nounChunks(tokens []Token) []string {
	var chunks []string
	var run []Token

	flush := func() {
		// Trim trailing non-noun tokens so the chunk head is a noun.
		end := len(run)
		for end > 0 && !isNounTag(run[end-1].Tag) {
			end--
		}
		if end > 0 {
			words := make([]string, end)
			for i := 0; i < end; i++ {
				words[i] = run[i].Text
			}
			chunks = append(chunks, strings.Join(words, " "))
		}
		run = run[:0]
	}

	for _, t := range tokens {
		if isChunkTag(t.Tag) && !t.Punct {
			run = append(run, t)
			continue
		}
		flush()
	}
	flush()
	return chunks
}

func isNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isChunkTag(tag string) bool {
	switch tag {
	case "DT", "PDT", "PRP$", "JJ", "JJR", "JJS", "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isPunct(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
