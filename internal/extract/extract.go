// Package extract turns uploaded resume files into plain text. Each
// supported format has its own Extractor; a Registry maps file extensions
// to the right one.
package extract

import (
	"io"
	"sort"
	"strings"
)

// Extractor converts one document format into plain text.
type Extractor interface {
	// Extract reads the whole document and returns its text content.
	Extract(r io.ReaderAt, size int64) (string, error)
	// Format is the lowercased extension this extractor handles, e.g. ".pdf".
	Format() string
}

// Registry maps lowercased file extensions to extractors. Built once at
// startup and read-only afterwards.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry builds a registry with all built-in extractors.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Extractor)}
	r.register(&pdfExtractor{})
	r.register(&docxExtractor{})
	r.register(&plainExtractor{ext: ".txt"})
	// Legacy .doc has no dedicated parser; plain-byte scraping recovers
	// enough text for keyword scoring on most real files.
	r.register(&plainExtractor{ext: ".doc"})
	return r
}

func (r *Registry) register(e Extractor) {
	r.byExt[e.Format()] = e
}

// Lookup returns the extractor for a filename's extension.
func (r *Registry) Lookup(filename string) (Extractor, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return nil, false
	}
	e, ok := r.byExt[strings.ToLower(filename[idx:])]
	return e, ok
}

// PDFSupport reports whether PDF extraction is available.
func (r *Registry) PDFSupport() bool {
	_, ok := r.byExt[".pdf"]
	return ok
}

// DOCXSupport reports whether DOCX extraction is available.
func (r *Registry) DOCXSupport() bool {
	_, ok := r.byExt[".docx"]
	return ok
}

// SupportedFormats returns the registered extensions in sorted order.
func (r *Registry) SupportedFormats() []string {
	formats := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}
