package extract

import (
	"fmt"
	"io"

	"github.com/nguyenthenguyen/docx"
)

// docxExtractor reads DOCX documents via the docx archive parser.
type docxExtractor struct{}

func (e *docxExtractor) Format() string { return ".docx" }

func (e *docxExtractor) Extract(r io.ReaderAt, size int64) (string, error) {
	doc, err := docx.ReadDocxFromMemory(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
