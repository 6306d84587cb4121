package handlers

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resumesorter/internal/pipeline"
	"resumesorter/internal/store"
)

// UploadHandler accepts resume batches and hands them to the pipeline.
type UploadHandler struct {
	pipeline *pipeline.Pipeline
	store    *store.Store
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(p *pipeline.Pipeline, s *store.Store) *UploadHandler {
	return &UploadHandler{pipeline: p, store: s}
}

// Create handles POST /upload: multipart field "files", one or more.
func (h *UploadHandler) Create(c fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		setFlash(c, "Could not read the upload. Please try again.")
		return c.Redirect().To("/")
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		setFlash(c, "No files selected.")
		return c.Redirect().To("/")
	}

	uploads := make([]pipeline.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, pipeline.UploadedFile{
			Filename: fh.Filename,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}

	id := uuid.NewString()
	result, err := h.pipeline.Process(id, uploads)
	if err != nil {
		slog.Error("batch processing failed", "session", id, "error", err)
		setFlash(c, "Could not build the results archive. Please try again.")
		return c.Redirect().To("/")
	}

	if result.Processed == 0 {
		setFlash(c, "No files processed. Supported formats: .pdf, .docx, .doc, .txt")
		return c.Redirect().To("/")
	}

	h.store.Put(result)
	setBatchID(c, id)
	return c.Redirect().To("/results")
}
