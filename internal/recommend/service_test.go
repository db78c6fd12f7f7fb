package recommend

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobsync/skillmatch/internal/catalog"
	"github.com/jobsync/skillmatch/internal/nlp"
	"github.com/jobsync/skillmatch/internal/skills"
	"github.com/jobsync/skillmatch/internal/vocab"
)

// stubEncoder records every Embed call and answers from a canned table,
// falling back to a zero vector for unknown queries.
type stubEncoder struct {
	calls   []string
	vectors map[string][]float32
}

func (s *stubEncoder) ModelID() string { return "stub-model" }
func (s *stubEncoder) Dim() int        { return 3 }

func (s *stubEncoder) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls = append(s.calls, text)
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 0}, nil
}

func testService(t *testing.T) (*Service, *stubEncoder) {
	t.Helper()

	vocabPath := filepath.Join(t.TempDir(), "vocab.yaml")
	vocabYAML := "skills:\n  - python\n  - sql\n  - docker\nstop_terms:\n  - experience\n  - a\n  - the\n  - for\n"
	require.NoError(t, os.WriteFile(vocabPath, []byte(vocabYAML), 0o644))

	v, err := vocab.LoadFile(vocabPath)
	require.NoError(t, err)
	ann, err := nlp.NewAnnotator()
	require.NoError(t, err)
	extractor := skills.NewExtractor(v, ann)

	c := &catalog.Catalog{
		Manifest: catalog.Manifest{Dim: 3},
		Courses: []catalog.Course{
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

	enc := &stubEncoder{vectors: map[string][]float32{
		"docker":     {0, 0, 1},
		"sql docker": {0, 1, 1},
		"python":     {1, 0, 0},
		"":           {1, 1, 1},
	}}

	return New(extractor, enc, catalog.NewRanker(c), zap.NewNop()), enc
}

func TestRecommendForSkillGap_EmptyShortCircuits(t *testing.T) {
	svc, enc := testService(t)

	got, err := svc.RecommendForSkillGap(context.Background(), nil, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, enc.calls, "no embedding call for an empty gap")
}

func TestRecommendForSkillGap_RanksJoinedQuery(t *testing.T) {
	svc, enc := testService(t)

	got, err := svc.RecommendForSkillGap(context.Background(), []string{"sql", "docker"}, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []string{"sql docker"}, enc.calls)
	names := []string{got[0].Name, got[1].Name}
	assert.Contains(t, names, "SQL Fundamentals")
	assert.Contains(t, names, "Docker Deep Dive")
}

func TestRecommendForJob(t *testing.T) {
	svc, _ := testService(t)

	analysis, err := svc.RecommendForJob(context.Background(),
		"Looking for a Python developer with Docker experience",
		[]string{"python"}, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, analysis.SkillAnalysis.Matched)
	assert.Equal(t, []string{"docker"}, analysis.SkillAnalysis.Missing)
	assert.Equal(t, 1, analysis.MissingSkillsCount)
	assert.Equal(t, 50.0, analysis.MatchPercentage)

	require.NotEmpty(t, analysis.RecommendedCourses)
	assert.Equal(t, "Docker Deep Dive", analysis.RecommendedCourses[0].Name)
}

func TestRecommendForJob_NoGap(t *testing.T) {
	svc, enc := testService(t)

	analysis, err := svc.RecommendForJob(context.Background(),
		"Looking for a Python developer",
		[]string{"python"}, 3)
	require.NoError(t, err)

	assert.Equal(t, 100.0, analysis.MatchPercentage)
	assert.Empty(t, analysis.RecommendedCourses)
	assert.Empty(t, enc.calls)
}

func TestSearch_EmbedsEmptyQuery(t *testing.T) {
	svc, enc := testService(t)

	got, err := svc.Search(context.Background(), "", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, []string{""}, enc.calls, "empty query is still embedded")
}

func TestCoursesBySkill(t *testing.T) {
	svc, _ := testService(t)

	got, err := svc.CoursesBySkill(context.Background(), "docker", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Docker Deep Dive", got[0].Name)
}

func TestCatalogSize(t *testing.T) {
	svc, _ := testService(t)
	assert.Equal(t, 3, svc.CatalogSize())
}
