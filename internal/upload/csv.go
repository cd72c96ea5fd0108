package upload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVExtractor flattens CSV rows into labeled lines.
type CSVExtractor struct{}

func (e *CSVExtractor) Extract(r io.Reader, filename string) (string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	headers := records[0]

	var text strings.Builder
	text.WriteString("Headers: " + strings.Join(headers, ", ") + "\n\n")
	for _, row := range records[1:] {
		for j, cell := range row {
			if j < len(headers) {
				text.WriteString(headers[j] + ": " + cell)
			} else {
				text.WriteString(cell)
			}
			if j < len(row)-1 {
				text.WriteString(", ")
			}
		}
		text.WriteString("\n")
	}

	return text.String(), nil
}
