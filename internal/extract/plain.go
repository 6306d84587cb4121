package extract

import (
	"io"
	"strings"
)

// plainExtractor treats the file body as text. It backs .txt directly and
// .doc on a best-effort basis: binary noise is blanked out, which leaves
// the embedded text runs that keyword scoring needs.
type plainExtractor struct {
	ext string
}

func (e *plainExtractor) Format() string { return e.ext }

func (e *plainExtractor) Extract(r io.ReaderAt, size int64) (string, error) {
	data, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return "", err
	}

	if e.ext == ".txt" {
		return string(data), nil
	}
	return scrapePrintable(data), nil
}

// scrapePrintable keeps printable ASCII and common whitespace, replacing
// everything else with spaces.
func scrapePrintable(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		switch {
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		case c == '\n' || c == '\r' || c == '\t':
			b.WriteByte(c)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}
