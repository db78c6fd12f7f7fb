package catalog

import (
	"errors"
	"math"
	"testing"
)

func rankerFixture() *Ranker {
	c := &Catalog{
		Manifest: Manifest{Dim: 3},
		Courses: []Course{
			{Name: "Intro to Python", Skills: "python"},
			{Name: "SQL Fundamentals", Skills: "sql"},
			{Name: "Docker Deep Dive", Skills: "docker"},
		},
		Vectors: []float32{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
	}
	return NewRanker(c)
}

func TestRank_OrdersBySimilarity(t *testing.T) {
	r := rankerFixture()

	got, err := r.Rank([]float32{0, 1, 0}, 3)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if got[0].Name != "SQL Fundamentals" {
		t.Fatalf("expected SQL first, got %q", got[0].Name)
	}
	if math.Abs(got[0].Similarity-1) > 1e-6 {
		t.Fatalf("expected similarity 1, got %v", got[0].Similarity)
	}
	if got[0].MatchPercentage != 100 {
		t.Fatalf("expected match percentage 100, got %v", got[0].MatchPercentage)
	}
}

func TestRank_TiesKeepRowOrder(t *testing.T) {
	r := rankerFixture()

	// Equidistant from the first two rows; row order must decide.
	got, err := r.Rank([]float32{1, 1, 0}, 2)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if got[0].Name != "Intro to Python" || got[1].Name != "SQL Fundamentals" {
		t.Fatalf("ties must keep catalog order: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestRank_TopNClamping(t *testing.T) {
	r := rankerFixture()

	got, err := r.Rank([]float32{1, 0, 0}, 10)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("topN beyond catalog size should clamp: got %d", len(got))
	}

	got, err = r.Rank([]float32{1, 0, 0}, 0)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("topN 0 should return empty, got %d", len(got))
	}
	if got == nil {
		t.Fatal("empty result must not be nil")
	}
}

func TestRank_DimMismatch(t *testing.T) {
	r := rankerFixture()
	_, err := r.Rank([]float32{1, 0}, 3)
	if !errors.Is(err, ErrVectorLengthMismatch) {
		t.Fatalf("expected ErrVectorLengthMismatch, got %v", err)
	}
}

func TestRank_MatchPercentageRounding(t *testing.T) {
	c := &Catalog{
		Manifest: Manifest{Dim: 2},
		Courses:  []Course{{Name: "A"}},
		Vectors:  []float32{1, 0},
	}
	r := NewRanker(c)

	got, err := r.Rank([]float32{1, 1}, 1)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	// cos(45 deg) = 0.7071... so the percentage rounds to 70.71.
	if got[0].MatchPercentage != 70.71 {
		t.Fatalf("expected 70.71, got %v", got[0].MatchPercentage)
	}
}
