package handlers

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v3"

	"resumesorter/internal/store"
)

// ResultsHandler serves the batch summary page and the archive download.
type ResultsHandler struct {
	store *store.Store
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(s *store.Store) *ResultsHandler {
	return &ResultsHandler{store: s}
}

// Show renders the categorization summary for the session's latest batch.
func (h *ResultsHandler) Show(c fiber.Ctx) error {
	id, ok := batchID(c)
	if !ok {
		setFlash(c, "Upload some resumes first.")
		return c.Redirect().To("/")
	}

	result, ok := h.store.Get(id)
	if !ok {
		setFlash(c, "Your results have expired. Upload the files again.")
		return c.Redirect().To("/")
	}

	return c.Render("results", fiber.Map{
		"Title":      "Results",
		"Flash":      takeFlash(c),
		"Result":     result,
		"HasArchive": result.ArchivePath != "",
		"TotalFiles": result.Processed + result.Failed,
	})
}

// Download streams the session's zip archive as an attachment. The archive
// is one-time: a successful download releases it.
func (h *ResultsHandler) Download(c fiber.Ctx) error {
	id, ok := batchID(c)
	if !ok {
		setFlash(c, "Upload some resumes first.")
		return c.Redirect().To("/")
	}

	path, ok := h.store.TakeArchive(id)
	if !ok {
		setFlash(c, "No archive available for download.")
		return c.Redirect().To("/")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("failed to read archive", "session", id, "error", err)
		setFlash(c, "The archive could not be read. Upload the files again.")
		return c.Redirect().To("/")
	}
	// Free the disk copy right away; the cleanup sweep would get it later.
	os.Remove(path)

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="categorized_resumes.zip"`)
	c.Set(fiber.HeaderContentType, "application/zip")
	return c.Send(data)
}
