// Package docx serializes the converted document model into Word bytes.
package docx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgallion1/designdoc/internal/markdown"
	godocx "github.com/fumiama/go-docx"
)

// FrontSection is a titled free-text section placed before the analysis,
// e.g. the user story name and description. Sections with an empty body are
// skipped.
type FrontSection struct {
	Title string
	Body  string
}

// Render serializes the front sections, a contents list, and the converted
// block sequence into docx bytes. The input document is not modified and can
// be rendered again on failure.
func Render(front []FrontSection, doc markdown.Document) ([]byte, error) {
	w := godocx.New().WithDefaultTheme()

	for _, fs := range front {
		if strings.TrimSpace(fs.Body) == "" {
			continue
		}
		w.AddParagraph().Style("Heading2").AddText(fs.Title)
		for _, line := range strings.Split(fs.Body, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			w.AddParagraph().AddText(line)
		}
	}

	writeContents(w, doc.TOC)

	for _, b := range doc.Blocks {
		switch b.Kind {
		case markdown.KindHeading:
			w.AddParagraph().Style(headingStyle(b.Level)).AddText(b.Text)
		case markdown.KindListItem:
			p := w.AddParagraph().Style(listStyle(b.List))
			addRuns(p, b.Runs)
		default:
			p := w.AddParagraph()
			addRuns(p, b.Runs)
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}

// writeContents renders the table-of-contents entries as an indented list
// under a Contents heading.
func writeContents(w *godocx.Docx, toc []markdown.TOCEntry) {
	if len(toc) == 0 {
		return
	}
	w.AddParagraph().Style("Heading2").AddText("Contents")
	for _, e := range toc {
		depth := e.Level - 2 // level 2 entries sit flush left
		if depth < 0 {
			depth = 0
		}
		if depth > 4 {
			depth = 4
		}
		w.AddParagraph().AddText(strings.Repeat("    ", depth) + e.Text)
	}
}

func addRuns(p *godocx.Paragraph, runs []markdown.Run) {
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		t := p.AddText(r.Text)
		if r.Bold {
			t.Bold()
		}
	}
}

func headingStyle(level int) string {
	switch level {
	case 1:
		return "Heading1"
	case 3:
		return "Heading3"
	}
	return "Heading2"
}

func listStyle(kind markdown.ListKind) string {
	if kind == markdown.ListNumbered {
		return "ListNumber"
	}
	return "ListBullet"
}
