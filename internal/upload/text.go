package upload

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TextExtractor handles plain text and source-code files.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filename, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8 text", filename)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimRight(text, "\n") + "\n", nil
}
