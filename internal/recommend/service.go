// Package recommend composes skill extraction, skill comparison, and course
// ranking into the "what should I learn for this job" pipeline.
package recommend

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jobsync/skillmatch/internal/catalog"
	"github.com/jobsync/skillmatch/internal/embeddings"
	"github.com/jobsync/skillmatch/internal/logger"
	"github.com/jobsync/skillmatch/internal/skills"
)

// JobAnalysis is the combined result of analyzing a job description against
// resume skills. MatchPercentage reflects skill-set match, not course
// relevance.
type JobAnalysis struct {
	SkillAnalysis      skills.Comparison        `json:"skill_analysis"`
	RecommendedCourses []catalog.Recommendation `json:"recommended_courses"`
	MissingSkillsCount int                      `json:"missing_skills_count"`
	MatchPercentage    float64                  `json:"match_percentage"`
}

// Service answers skill-gap and course-search queries over a fixed catalog.
type Service struct {
	extractor *skills.Extractor
	encoder   embeddings.Provider
	ranker    *catalog.Ranker
	log       *zap.Logger
}

// New returns a Service over the given collaborators.
func New(extractor *skills.Extractor, encoder embeddings.Provider, ranker *catalog.Ranker, log *zap.Logger) *Service {
	return &Service{
		extractor: extractor,
		encoder:   encoder,
		ranker:    ranker,
		log:       log,
	}
}

// ExtractSkills returns the sorted, deduplicated skills found in text.
func (s *Service) ExtractSkills(text string) ([]string, error) {
	return s.extractor.Extract(text)
}

// CompareSkills compares resume skills against job skills.
func (s *Service) CompareSkills(resumeSkills, jobSkills []string) skills.Comparison {
	return skills.Compare(resumeSkills, jobSkills)
}

// RecommendForSkillGap ranks courses against the joined missing skills. An
// empty missing set short-circuits to an empty list: nothing is missing, so
// there is nothing to recommend.
func (s *Service) RecommendForSkillGap(ctx context.Context, missingSkills []string, topN int) ([]catalog.Recommendation, error) {
	if len(missingSkills) == 0 {
		return []catalog.Recommendation{}, nil
	}

	query := strings.Join(missingSkills, " ")
	emb, err := s.encoder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.ranker.Rank(emb, topN)
}

// RecommendForJob extracts the job's required skills, compares them with the
// resume skills, and recommends courses for the gap.
func (s *Service) RecommendForJob(ctx context.Context, jobDescription string, resumeSkills []string, topN int) (*JobAnalysis, error) {
	required, err := s.extractor.Extract(jobDescription)
	if err != nil {
		return nil, err
	}
	if len(required) == 0 {
		s.log.Debug("no skills extracted from job description",
			zap.String("job", logger.TruncateForLog(jobDescription, 120)),
		)
	}

	comparison := skills.Compare(resumeSkills, required)

	courses, err := s.RecommendForSkillGap(ctx, comparison.Missing, topN)
	if err != nil {
		return nil, err
	}

	return &JobAnalysis{
		SkillAnalysis:      comparison,
		RecommendedCourses: courses,
		MissingSkillsCount: len(comparison.Missing),
		MatchPercentage:    comparison.MatchPercentage,
	}, nil
}

// Search ranks the catalog against a verbatim query. Unlike
// RecommendForSkillGap it never short-circuits: even an empty query is
// embedded and ranked.
func (s *Service) Search(ctx context.Context, query string, topN int) ([]catalog.Recommendation, error) {
	emb, err := s.encoder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.ranker.Rank(emb, topN)
}

// CoursesBySkill returns courses teaching one specific skill.
func (s *Service) CoursesBySkill(ctx context.Context, skill string, topN int) ([]catalog.Recommendation, error) {
	return s.Search(ctx, skill, topN)
}

// CatalogSize returns the number of courses available for ranking.
func (s *Service) CatalogSize() int {
	return s.ranker.Catalog().Len()
}
