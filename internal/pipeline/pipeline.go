// Package pipeline runs one upload batch end to end: validate, persist,
// extract, classify, archive. Files are handled one at a time; a bad file
// fails alone and the batch carries on.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"resumesorter/internal/archive"
	"resumesorter/internal/classify"
	"resumesorter/internal/extract"
	"resumesorter/internal/metrics"
	"resumesorter/internal/models"
	"resumesorter/internal/validation"
)

const (
	previewLen  = 200
	archiveName = "results.zip"
)

// Skip reasons recorded on failed files and exported as metric labels.
const (
	ReasonUnsupportedType = "unsupported file type"
	ReasonSaveFailed      = "could not save file"
)

// UploadedFile is one file from a multipart batch, decoupled from the
// transport so the pipeline can be driven from tests.
type UploadedFile struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// Pipeline processes upload batches. Construct once at startup; safe for
// concurrent use because all per-batch state is local.
type Pipeline struct {
	classifier *classify.Classifier
	registry   *extract.Registry
	uploadDir  string
}

// New creates a pipeline writing session folders under uploadDir.
func New(classifier *classify.Classifier, registry *extract.Registry, uploadDir string) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		registry:   registry,
		uploadDir:  uploadDir,
	}
}

// Process runs a whole batch for one session and returns its result. The
// returned error is reserved for batch-level failures (session folder or
// archive creation); per-file problems only show up in the result counts.
// When no file survives, the result has Processed == 0 and no archive.
func (p *Pipeline) Process(sessionID string, files []UploadedFile) (*models.BatchResult, error) {
	metrics.RecordBatch()

	dir := filepath.Join(p.uploadDir, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session folder: %w", err)
	}

	result := models.NewBatchResult(sessionID)
	seen := make(map[string]int)

	for _, f := range files {
		result.AddRecord(p.processFile(dir, f, seen))
	}

	if result.Processed == 0 {
		return result, nil
	}

	if err := p.buildArchive(dir, result); err != nil {
		return nil, err
	}
	return result, nil
}

// processFile handles a single upload and never fails the batch.
func (p *Pipeline) processFile(dir string, f UploadedFile, seen map[string]int) models.ResumeRecord {
	name := validation.SanitizeFilename(f.Filename)
	rec := models.ResumeRecord{Filename: name}

	if !validation.AllowedExtension(name) {
		slog.Info("skipping file with unsupported extension", "filename", name)
		metrics.RecordFailed(ReasonUnsupportedType)
		rec.Failed = true
		rec.FailReason = ReasonUnsupportedType
		return rec
	}

	// Duplicate names within one batch get a numeric suffix so neither
	// the session folder nor the archive silently drops a file.
	stored := name
	if n := seen[name]; n > 0 {
		ext := filepath.Ext(name)
		stored = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), n, ext)
	}
	seen[name]++

	path := filepath.Join(dir, stored)
	if err := saveFile(f, path); err != nil {
		slog.Error("failed to save upload", "filename", name, "error", err)
		metrics.RecordFailed(ReasonSaveFailed)
		rec.Failed = true
		rec.FailReason = ReasonSaveFailed
		return rec
	}
	rec.Filename = stored
	rec.StoredPath = path

	text := p.extractText(path, stored)

	rec.Domain = p.classifier.Domain(text)
	rec.Experience = p.classifier.Experience(text)
	rec.Preview = preview(text)
	metrics.RecordProcessed(rec.Domain, rec.Experience)
	return rec
}

// extractText pulls text out of a saved file. Extraction trouble is never
// fatal: a corrupt or empty document falls back to its filename, which
// still gives the scorers something to work with.
func (p *Pipeline) extractText(path, filename string) string {
	extractor, ok := p.registry.Lookup(filename)
	if !ok {
		return filename
	}

	f, err := os.Open(path)
	if err != nil {
		slog.Warn("failed to reopen saved file", "filename", filename, "error", err)
		return filename
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return filename
	}

	text, err := extractor.Extract(f, info.Size())
	if err != nil {
		slog.Warn("text extraction failed, falling back to filename", "filename", filename, "error", err)
		return filename
	}
	if strings.TrimSpace(text) == "" {
		return filename
	}
	return text
}

func (p *Pipeline) buildArchive(dir string, result *models.BatchResult) error {
	var entries []archive.Entry
	for _, rec := range result.Records {
		if rec.Failed {
			continue
		}
		entries = append(entries, archive.Entry{
			Path: filepath.ToSlash(filepath.Join(
				validation.PathSegment(rec.Domain),
				validation.PathSegment(rec.Experience),
				rec.Filename,
			)),
			Source: rec.StoredPath,
		})
	}

	dest := filepath.Join(dir, archiveName)
	if err := archive.Build(dest, entries); err != nil {
		return fmt.Errorf("failed to build archive: %w", err)
	}
	result.ArchivePath = dest
	metrics.RecordArchive()
	return nil
}

func saveFile(f UploadedFile, path string) error {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	return dst.Close()
}

// preview returns a whitespace-collapsed excerpt of the extracted text,
// truncated at a rune boundary so multibyte characters stay intact.
func preview(text string) string {
	collapsed := strings.Join(strings.FieldsFunc(text, unicode.IsSpace), " ")
	if utf8.RuneCountInString(collapsed) <= previewLen {
		return collapsed
	}
	runes := []rune(collapsed)
	return string(runes[:previewLen]) + "..."
}
