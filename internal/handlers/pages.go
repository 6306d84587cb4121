package handlers

import (
	"github.com/gofiber/fiber/v3"

	"resumesorter/internal/config"
	"resumesorter/internal/extract"
)

// PageHandler renders the upload form and liveness endpoint.
type PageHandler struct {
	cfg      *config.Config
	registry *extract.Registry
}

// NewPageHandler creates a new page handler.
func NewPageHandler(cfg *config.Config, registry *extract.Registry) *PageHandler {
	return &PageHandler{cfg: cfg, registry: registry}
}

// Index renders the home page with the upload form.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":            "Upload Resumes",
		"Flash":            takeFlash(c),
		"SupportedFormats": h.registry.SupportedFormats(),
		"MaxUploadMB":      h.cfg.MaxUploadSize / (1024 * 1024),
	})
}

// Health handles the plain-text liveness check.
func (h *PageHandler) Health(c fiber.Ctx) error {
	return c.SendString("OK")
}
