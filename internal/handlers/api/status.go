package api

import (
	"github.com/gofiber/fiber/v3"

	"resumesorter/internal/classify"
	"resumesorter/internal/config"
	"resumesorter/internal/extract"
)

// StatusHandler reports service capabilities as JSON.
type StatusHandler struct {
	cfg        *config.Config
	registry   *extract.Registry
	classifier *classify.Classifier
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(cfg *config.Config, registry *extract.Registry, classifier *classify.Classifier) *StatusHandler {
	return &StatusHandler{cfg: cfg, registry: registry, classifier: classifier}
}

// Show handles GET /api/status.
func (h *StatusHandler) Show(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":            "ok",
		"pdf_support":       h.registry.PDFSupport(),
		"docx_support":      h.registry.DOCXSupport(),
		"supported_formats": h.registry.SupportedFormats(),
		"max_file_size":     h.cfg.MaxUploadSize,
		"categories": fiber.Map{
			"domains":           h.classifier.DomainNames(),
			"experience_levels": classify.TierNames(),
		},
	})
}
