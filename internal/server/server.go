// Package server is the thin HTTP transport over the recommendation service.
// All per-request failures are converted to structured JSON responses here;
// nothing in this layer may terminate the process.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jobsync/skillmatch/internal/config"
	"github.com/jobsync/skillmatch/internal/recommend"
)

// Server serves the skill matching and course ranking API.
type Server struct {
	cfg      *config.Config
	svc      *recommend.Service
	log      *zap.Logger
	validate *validator.Validate
	version  string
}

// New returns a Server over svc.
func New(cfg *config.Config, svc *recommend.Service, log *zap.Logger, version string) *Server {
	return &Server{
		cfg:      cfg,
		svc:      svc,
		log:      log,
		validate: validator.New(),
		version:  version,
	}
}

// Router builds the HTTP routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/extract-skills", s.handleExtractSkills)
		r.Post("/extract-skills-from-pdf", s.handleExtractSkillsFromPDF)
		r.Post("/compare-skills", s.handleCompareSkills)
		r.Post("/recommend-courses", s.handleRecommendCourses)
		r.Post("/analyze-job", s.handleAnalyzeJob)
		r.Post("/search-courses", s.handleSearchCourses)
		r.Get("/courses/by-skill/{skill}", s.handleCoursesBySkill)
	})

	return r
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
