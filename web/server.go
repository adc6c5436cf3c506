package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"sprint-burndown/burndown"
	"sprint-burndown/chart"
	"sprint-burndown/config"
	"sprint-burndown/github"
)

// Server exposes the burndown data and chart files over HTTP
type Server struct {
	Router *chi.Mux
	config config.Config

	// fetch is swappable so tests can stub the GitHub API.
	fetch func() (*github.Project, error)
	cron  *cron.Cron
}

// NewServer creates a new web server backed by the GitHub client
func NewServer(cfg config.Config) *Server {
	client := github.NewClient(cfg)
	s := &Server{
		config: cfg,
		fetch:  client.FetchProject,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))

	r.Get("/health", s.healthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/burndown", s.getBurndown)
	})

	r.Get("/chart", s.serveFile(s.config.SavePath))
	r.Get("/chart.html", s.serveFile(chart.HTMLPath(s.config.SavePath)))

	s.Router = r
}

// healthCheck returns server health status
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "sprint-burndown",
	})
}

// getBurndown fetches the project and returns the aggregated series
func (s *Server) getBurndown(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	result, err := s.compute()
	if err != nil && !errors.Is(err, burndown.ErrNoItems) {
		logrus.WithError(err).Error("Error computing burndown")
		http.Error(w, "Error computing burndown", http.StatusInternalServerError)
		return
	}
	if errors.Is(err, burndown.ErrNoItems) {
		result.Warnings = append(result.Warnings, err.Error())
	}

	response := map[string]interface{}{
		"status":    "success",
		"data":      result,
		"timestamp": time.Now().UTC(),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// serveFile serves a rendered chart file from disk
func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(path); err != nil {
			http.Error(w, "chart not rendered yet", http.StatusNotFound)
			return
		}
		http.ServeFile(w, r, path)
	}
}

// compute runs the fetch and aggregation pipeline once.
func (s *Server) compute() (*burndown.Result, error) {
	project, err := s.fetch()
	if err != nil {
		return nil, err
	}

	start, end, err := s.config.SprintDates()
	if err != nil {
		return nil, err
	}

	window := burndown.Window{
		Start: start,
		End:   end,
		Label: s.config.SprintLabel,
		Field: s.config.SprintField,
	}
	result, err := burndown.Compute(project.Items, window, s.config.PlannedPoints, s.config.PointsField)
	if result != nil {
		result.Project = project.Title
	}
	return result, err
}

// Regenerate runs the pipeline and rewrites the chart files. A run that
// produced no data leaves the existing files untouched.
func (s *Server) Regenerate() error {
	result, err := s.compute()
	if err != nil {
		return err
	}
	return chart.Render(result, s.config.ChartType, s.config.SavePath)
}

// StartRefresh schedules Regenerate on the given cron spec.
func (s *Server) StartRefresh(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := s.Regenerate(); err != nil {
			logrus.WithError(err).Error("Scheduled chart refresh failed")
			return
		}
		logrus.Info("Chart files refreshed")
	}); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	return nil
}

// Stop halts the refresh schedule if one is running.
func (s *Server) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Start starts the web server
func (s *Server) Start(port string) error {
	logrus.Infof("Starting sprint-burndown server on port %s", port)
	logrus.Info("Available endpoints:")
	logrus.Info("   GET /health - Health check")
	logrus.Info("   GET /api/burndown - Burndown series JSON")
	logrus.Info("   GET /chart - Rendered PNG chart")
	logrus.Info("   GET /chart.html - Rendered HTML chart")

	return http.ListenAndServe(":"+port, s.Router)
}
