package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"resumesorter/internal/store"
)

// ResultsHandler exposes the session's batch summary as JSON.
type ResultsHandler struct {
	store *store.Store
}

// NewResultsHandler creates a new API results handler.
func NewResultsHandler(s *store.Store) *ResultsHandler {
	return &ResultsHandler{store: s}
}

// Show handles GET /api/results.
func (h *ResultsHandler) Show(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return jsonError(c, fiber.StatusNotFound, "no batch in session")
	}
	id, ok := sess.Get("batch_id").(string)
	if !ok || id == "" {
		return jsonError(c, fiber.StatusNotFound, "no batch in session")
	}

	result, ok := h.store.Get(id)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "batch expired")
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   result,
	})
}
