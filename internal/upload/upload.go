// Package upload extracts plain text from an uploaded original-code or
// context file so it can feed the analysis prompt.
package upload

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// Extractor converts raw uploaded bytes into plain text.
type Extractor interface {
	Extract(r io.Reader, filename string) (string, error)
}

// codeExtensions are treated as plain UTF-8 text. This mirrors the source
// types the form accepts plus common text formats.
var codeExtensions = map[string]bool{
	".py":   true,
	".txt":  true,
	".md":   true,
	".js":   true,
	".ts":   true,
	".java": true,
	".c":    true,
	".cc":   true,
	".cpp":  true,
	".h":    true,
	".hpp":  true,
	".go":   true,
	".rs":   true,
	".rb":   true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string, pdfFallback bool) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case codeExtensions[ext]:
		return &TextExtractor{}, nil
	case ext == ".csv":
		return &CSVExtractor{}, nil
	case ext == ".html" || ext == ".htm":
		return &HTMLExtractor{}, nil
	case ext == ".pdf":
		return &PDFExtractor{FallbackPdftotext: pdfFallback}, nil
	case ext == ".docx":
		return &DOCXExtractor{}, nil
	}
	return nil, fmt.Errorf("unsupported file extension %q (supported: %s)", ext, supportedList())
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	_, err := ForFile(filename, false)
	return err == nil
}

func supportedList() string {
	exts := []string{".csv", ".html", ".htm", ".pdf", ".docx"}
	for ext := range codeExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, " ")
}
