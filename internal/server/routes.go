package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumesorter/internal/classify"
	"resumesorter/internal/extract"
	"resumesorter/internal/handlers"
	"resumesorter/internal/handlers/api"
	"resumesorter/internal/pipeline"
	"resumesorter/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(classifier *classify.Classifier, registry *extract.Registry, batchStore *store.Store) {
	pipe := pipeline.New(classifier, registry, s.Cfg.UploadDir)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(s.Cfg, registry)
	uploadHandler := handlers.NewUploadHandler(pipe, batchStore)
	resultsHandler := handlers.NewResultsHandler(batchStore)
	statusHandler := api.NewStatusHandler(s.Cfg, registry, classifier)
	apiResultsHandler := api.NewResultsHandler(batchStore)

	// Frontend routes
	s.App.Get("/", pageHandler.Index)
	s.App.Post("/upload", uploadHandler.Create)
	s.App.Get("/results", resultsHandler.Show)
	s.App.Get("/download", resultsHandler.Download)

	// API routes
	s.App.Get("/api/status", statusHandler.Show)
	s.App.Get("/api/results", apiResultsHandler.Show)

	// Operational endpoints
	s.App.Get("/health", pageHandler.Health)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
