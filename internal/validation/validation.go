package validation

import (
	"path/filepath"
	"regexp"
	"strings"
)

// allowedExtensions is the upload allow-list, keyed by lowercased extension.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
}

// unsafeFilenameChars matches everything we strip out of uploaded filenames.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._ -]`)

// AllowedExtension reports whether the filename carries an accepted resume
// extension.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename reduces a client-supplied filename to a safe basename.
// Path components are dropped and unsafe runes replaced, so the result can
// be joined under the session upload directory without traversal risk.
func SanitizeFilename(filename string) string {
	// Clients may send Windows-style paths; strip both separator kinds.
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}
	filename = filepath.Base(filename)
	filename = unsafeFilenameChars.ReplaceAllString(filename, "_")
	filename = strings.Trim(filename, ". ")
	if filename == "" {
		return "unnamed"
	}
	return filename
}

// labelReplacer converts classification labels into archive path segments:
// "Senior, 6+ years" -> "Senior_6plus_years".
var labelReplacer = strings.NewReplacer(
	", ", "_",
	",", "_",
	"+", "plus",
	" ", "_",
	"/", "-",
)

// PathSegment converts a domain or experience label into a zip path segment.
func PathSegment(label string) string {
	return labelReplacer.Replace(label)
}
