package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type textRequest struct {
	Text string `json:"text"`
}

type compareRequest struct {
	ResumeSkills []string `json:"resume_skills"`
	JobSkills    []string `json:"job_skills"`
}

type recommendRequest struct {
	MissingSkills []string `json:"missing_skills"`
	TopN          int      `json:"top_n" validate:"omitempty,min=1,max=100"`
}

type analyzeRequest struct {
	JobDescription string   `json:"job_description" validate:"required"`
	ResumeSkills   []string `json:"resume_skills"`
	TopN           int      `json:"top_n" validate:"omitempty,min=1,max=100"`
}

type searchRequest struct {
	Query string `json:"query"`
	TopN  int    `json:"top_n" validate:"omitempty,min=1,max=100"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "skillmatch",
		"version": s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"courses": s.svc.CatalogSize(),
	})
}

func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}

	found, err := s.svc.ExtractSkills(req.Text)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"skills":  found,
		"count":   len(found),
	})
}

// handleExtractSkillsFromPDF receives the text already extracted from an
// uploaded PDF by the upstream layer. Empty text means the PDF yielded
// nothing and is a client error.
func (s *Server) handleExtractSkillsFromPDF(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, http.StatusBadRequest, "could not extract text from PDF")
		return
	}

	found, err := s.svc.ExtractSkills(req.Text)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"skills":      found,
		"count":       len(found),
		"text_length": len(req.Text),
	})
}

func (s *Server) handleCompareSkills(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"comparison": s.svc.CompareSkills(req.ResumeSkills, req.JobSkills),
	})
}

func (s *Server) handleRecommendCourses(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !s.decode(w, r, &req) {
		return
	}

	courses, err := s.svc.RecommendForSkillGap(r.Context(), req.MissingSkills, s.topN(req.TopN))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"courses": courses,
		"count":   len(courses),
	})
}

func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}

	analysis, err := s.svc.RecommendForJob(r.Context(), req.JobDescription, req.ResumeSkills, s.topN(req.TopN))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":              true,
		"skill_analysis":       analysis.SkillAnalysis,
		"recommended_courses":  analysis.RecommendedCourses,
		"missing_skills_count": analysis.MissingSkillsCount,
		"match_percentage":     analysis.MatchPercentage,
	})
}

func (s *Server) handleSearchCourses(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !s.decode(w, r, &req) {
		return
	}

	courses, err := s.svc.Search(r.Context(), req.Query, s.topN(req.TopN))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"courses": courses,
		"count":   len(courses),
	})
}

func (s *Server) handleCoursesBySkill(w http.ResponseWriter, r *http.Request) {
	skill := chi.URLParam(r, "skill")

	topN := 5
	if v := r.URL.Query().Get("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			s.writeError(w, http.StatusBadRequest, "top_n must be an integer between 1 and 100")
			return
		}
		topN = n
	}

	courses, err := s.svc.CoursesBySkill(r.Context(), skill, topN)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"skill":   skill,
		"courses": courses,
		"count":   len(courses),
	})
}

// topN applies the configured default when the request leaves top_n unset.
func (s *Server) topN(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.cfg.DefaultTopN
}

// decode parses and validates the JSON request body. On failure it writes a
// 400 response and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("cannot encode response", zap.Error(err))
	}
}
