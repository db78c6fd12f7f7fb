package catalog

import (
	"fmt"
	"math"
	"sort"
)

// Recommendation is a catalog row projected with query-scoped scores. The
// similarity annotation belongs to the query result, never to the catalog.
type Recommendation struct {
	Course
	Similarity      float64 `json:"similarity_score"`
	MatchPercentage float64 `json:"match_percentage"`
}

// Ranker scores every catalog row against a query embedding. Row norms are
// precomputed once so a query costs one pass over the vector block.
type Ranker struct {
	catalog *Catalog
	norms   []float64
}

// NewRanker returns a Ranker over c.
func NewRanker(c *Catalog) *Ranker {
	norms := make([]float64, c.Len())
	for i := range norms {
		norms[i] = norm(c.Vector(i))
	}
	return &Ranker{catalog: c, norms: norms}
}

// Rank returns the topN rows by cosine similarity against query, descending.
// Ties keep catalog row order. The result length is min(topN, catalog size);
// topN <= 0 yields an empty result.
func (r *Ranker) Rank(query []float32, topN int) ([]Recommendation, error) {
	if len(query) != r.catalog.Manifest.Dim {
		return nil, fmt.Errorf("query embedding dim %d, catalog dim %d: %w",
			len(query), r.catalog.Manifest.Dim, ErrVectorLengthMismatch)
	}

	n := r.catalog.Len()
	if topN <= 0 || n == 0 {
		return []Recommendation{}, nil
	}

	qn := norm(query)
	sims := make([]float64, n)
	for i := 0; i < n; i++ {
		den := qn * r.norms[i]
		if den == 0 {
			continue
		}
		sims[i] = dot(query, r.catalog.Vector(i)) / den
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Stable sort keeps catalog row order on equal scores.
	sort.SliceStable(order, func(a, b int) bool {
		return sims[order[a]] > sims[order[b]]
	})

	if topN > n {
		topN = n
	}
	out := make([]Recommendation, 0, topN)
	for _, i := range order[:topN] {
		out = append(out, Recommendation{
			Course:          r.catalog.Courses[i],
			Similarity:      sims[i],
			MatchPercentage: math.Round(sims[i]*100*100) / 100,
		})
	}
	return out, nil
}

// Catalog returns the ranked catalog.
func (r *Ranker) Catalog() *Catalog {
	return r.catalog
}
