// Package archive builds the categorized zip that a batch download serves.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// Entry maps one stored file to its path inside the archive,
// e.g. "Software_Engineering/Senior_6plus_years/resume.pdf".
type Entry struct {
	Path   string // archive-internal path
	Source string // on-disk file to copy in
}

// Build writes a zip at dest containing every entry in input order.
// A failure removes the partial file so nothing half-written is served.
func Build(dest string, entries []Entry) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	if err := writeEntries(f, entries); err != nil {
		f.Close()
		os.Remove(dest)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(dest)
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

func writeEntries(w io.Writer, entries []Entry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		dst, err := zw.Create(e.Path)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", e.Path, err)
		}
		src, err := os.Open(e.Source)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", e.Source, err)
		}
		_, err = io.Copy(dst, src)
		src.Close()
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", e.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}
