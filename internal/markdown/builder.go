package markdown

import "strings"

// builder accumulates blocks and TOC entries for one conversion. The
// solutionHeading field is the sequential heading heuristic: once a heading
// containing "Solution" is seen, a later heading containing "How It Works"
// is demoted to display level 3. The scope is the whole document, not the
// nearest section.
type builder struct {
	blocks          []Block
	toc             []TOCEntry
	solutionHeading string
}

// Build converts analysis markdown into a Document. Parse anomalies never
// fail: unmatched bold markers stay literal, out-of-range heading depths are
// clamped, and empty input yields an empty document. Each call uses fresh
// state, so concurrent conversions are independent.
func Build(text string) Document {
	var b builder
	for _, seg := range splitSegments(text) {
		switch seg.kind {
		case segHeading:
			b.heading(seg.text)
		case segBody:
			b.body(seg.text)
		}
	}
	return Document{Blocks: b.blocks, TOC: b.toc}
}

// heading classifies one raw heading line, records its TOC entry, and
// appends the heading block.
func (b *builder) heading(raw string) {
	nominal := leadingMarkers(raw)
	text := strings.TrimSpace(strings.ReplaceAll(raw, "#", ""))

	// The document title (depth 1) stays out of the contents list.
	if nominal > 1 {
		b.toc = append(b.toc, TOCEntry{Level: nominal, Text: text})
	}

	level := nominal
	if level > 2 {
		level = 2
	}
	if level < 1 {
		level = 1
	}

	switch {
	case strings.Contains(text, "Solution"):
		b.solutionHeading = text
	case strings.Contains(text, "How It Works") && b.solutionHeading != "":
		level = 3
	}

	b.blocks = append(b.blocks, Block{Kind: KindHeading, Level: level, Text: text})
}

// body dispatches each non-empty line of a body segment to the list
// classifier and inline splitter, appending one block per line.
func (b *builder) body(seg string) {
	for _, line := range strings.Split(seg, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kind, content := classifyLine(line)
		switch kind {
		case lineBullet:
			b.blocks = append(b.blocks, Block{Kind: KindListItem, List: ListBullet, Runs: splitRuns(content)})
		case lineNumbered:
			b.blocks = append(b.blocks, Block{Kind: KindListItem, List: ListNumbered, Runs: splitRuns(content)})
		default:
			b.blocks = append(b.blocks, Block{Kind: KindParagraph, Runs: splitRuns(line)})
		}
	}
}

func leadingMarkers(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	return n
}
