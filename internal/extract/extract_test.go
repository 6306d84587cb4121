package extract

import (
	"bytes"
	"strings"
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name     string
		filename string
		found    bool
		format   string
	}{
		{"pdf", "resume.pdf", true, ".pdf"},
		{"docx", "resume.docx", true, ".docx"},
		{"txt", "resume.txt", true, ".txt"},
		{"doc", "resume.doc", true, ".doc"},
		{"uppercase", "RESUME.TXT", true, ".txt"},
		{"executable", "malware.exe", false, ""},
		{"no extension", "resume", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := reg.Lookup(tt.filename)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.filename, ok, tt.found)
			}
			if ok && e.Format() != tt.format {
				t.Errorf("Lookup(%q) format = %q, want %q", tt.filename, e.Format(), tt.format)
			}
		})
	}
}

func TestRegistryCapabilities(t *testing.T) {
	reg := NewRegistry()

	if !reg.PDFSupport() {
		t.Error("PDFSupport() = false, want true")
	}
	if !reg.DOCXSupport() {
		t.Error("DOCXSupport() = false, want true")
	}

	want := []string{".doc", ".docx", ".pdf", ".txt"}
	got := reg.SupportedFormats()
	if len(got) != len(want) {
		t.Fatalf("SupportedFormats() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SupportedFormats()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPlainExtractor(t *testing.T) {
	reg := NewRegistry()
	e, ok := reg.Lookup("resume.txt")
	if !ok {
		t.Fatal("no extractor for .txt")
	}

	body := "Senior Python developer, 8 years experience with Django and React"
	got, err := e.Extract(bytes.NewReader([]byte(body)), int64(len(body)))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != body {
		t.Errorf("Extract() = %q, want %q", got, body)
	}
}

func TestDocScraping(t *testing.T) {
	reg := NewRegistry()
	e, ok := reg.Lookup("resume.doc")
	if !ok {
		t.Fatal("no extractor for .doc")
	}

	// Simulated legacy binary: text runs interleaved with control bytes.
	body := []byte("\x00\x01python developer\x00\x02\x033 years experience\x00")
	got, err := e.Extract(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !strings.Contains(got, "python developer") {
		t.Errorf("Extract() = %q, want text run preserved", got)
	}
	if strings.ContainsRune(got, 0) {
		t.Error("Extract() output still contains NUL bytes")
	}
}

func TestPDFExtractorRejectsGarbage(t *testing.T) {
	reg := NewRegistry()
	e, _ := reg.Lookup("resume.pdf")

	body := []byte("this is not a pdf at all")
	if _, err := e.Extract(bytes.NewReader(body), int64(len(body))); err == nil {
		t.Error("Extract() on non-PDF bytes: expected error, got nil")
	}
}

func TestDOCXExtractorRejectsGarbage(t *testing.T) {
	reg := NewRegistry()
	e, _ := reg.Lookup("resume.docx")

	body := []byte("this is not a zip archive")
	if _, err := e.Extract(bytes.NewReader(body), int64(len(body))); err == nil {
		t.Error("Extract() on non-DOCX bytes: expected error, got nil")
	}
}
