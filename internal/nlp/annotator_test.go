package nlp

import (
	"strings"
	"testing"
)

func TestAnnotate_TokensAndFlags(t *testing.T) {
	ann, err := NewAnnotator()
	if err != nil {
		t.Fatalf("NewAnnotator: %v", err)
	}

	a, err := ann.Annotate("the developers used databases, docker and kubernetes")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if len(a.Tokens) == 0 {
		t.Fatal("no tokens")
	}

	byText := map[string]Token{}
	for _, tok := range a.Tokens {
		byText[tok.Text] = tok
	}

	if tok, ok := byText["the"]; !ok || !tok.Stop {
		t.Fatalf("expected 'the' to be a stop word: %+v", tok)
	}
	if tok, ok := byText[","]; !ok || !tok.Punct {
		t.Fatalf("expected ',' to be punctuation: %+v", tok)
	}
	if tok, ok := byText["developers"]; !ok || tok.Lemma != "developer" {
		t.Fatalf("expected lemma developer: %+v", tok)
	}
	if tok, ok := byText["used"]; !ok || tok.Lemma != "use" {
		t.Fatalf("expected lemma use: %+v", tok)
	}
}

func TestAnnotate_NounChunks(t *testing.T) {
	ann, err := NewAnnotator()
	if err != nil {
		t.Fatalf("NewAnnotator: %v", err)
	}

	a, err := ann.Annotate("we build scalable data pipelines")
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	var hit bool
	for _, c := range a.NounChunks {
		if strings.Contains(c, "pipelines") {
			hit = true
		}
	}
	if !hit {
		t.Fatalf("expected a noun chunk containing 'pipelines', got %v", a.NounChunks)
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "The", "and", "with"} {
		if !IsStopWord(w) {
			t.Fatalf("expected %q to be a stop word", w)
		}
	}
	for _, w := range []string{"python", "docker", "go"} {
		if IsStopWord(w) {
			t.Fatalf("did not expect %q to be a stop word", w)
		}
	}
}

func TestNounChunks_EndsAtNoun(t *testing.T) {
	tokens := []Token{
		{Text: "the", Tag: "DT"},
		{Text: "quick", Tag: "JJ"},
		{Text: "pipeline", Tag: "NN"},
		{Text: "runs", Tag: "VBZ"},
		{Text: "nightly", Tag: "RB"},
	}
	chunks := nounChunks(tokens)
	if len(chunks) != 1 || chunks[0] != "the quick pipeline" {
		t.Fatalf("unexpected chunks: %v", chunks)
	}
}

func TestNounChunks_TrimsTrailingAdjectives(t *testing.T) {
	tokens := []Token{
		{Text: "distributed", Tag: "JJ"},
		{Text: "systems", Tag: "NNS"},
		{Text: "reliable", Tag: "JJ"},
	}
	chunks := nounChunks(tokens)
	if len(chunks) != 1 || chunks[0] != "distributed systems" {
		t.Fatalf("unexpected chunks: %v", chunks)
	}
}
