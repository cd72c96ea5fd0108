package markdown

import (
	"strings"
	"testing"
)

func TestBuild_FullExample(t *testing.T) {
	input := "# Title\n## Solution\nThis **changed**.\n### How It Works\n- step one\n1. first"
	doc := Build(input)

	if len(doc.Blocks) != 6 {
		t.Fatalf("expected 6 blocks, got %d: %#v", len(doc.Blocks), doc.Blocks)
	}

	title := doc.Blocks[0]
	if title.Kind != KindHeading || title.Level != 1 || title.Text != "Title" {
		t.Errorf("block 0: expected level-1 heading %q, got %#v", "Title", title)
	}

	solution := doc.Blocks[1]
	if solution.Kind != KindHeading || solution.Level != 2 || solution.Text != "Solution" {
		t.Errorf("block 1: expected level-2 heading %q, got %#v", "Solution", solution)
	}

	para := doc.Blocks[2]
	if para.Kind != KindParagraph {
		t.Fatalf("block 2: expected paragraph, got %v", para.Kind)
	}
	wantRuns := []Run{{Text: "This "}, {Text: "changed", Bold: true}, {Text: "."}}
	if len(para.Runs) != len(wantRuns) {
		t.Fatalf("block 2: expected %d runs, got %#v", len(wantRuns), para.Runs)
	}
	for i := range wantRuns {
		if para.Runs[i] != wantRuns[i] {
			t.Errorf("block 2 run %d: expected %#v, got %#v", i, wantRuns[i], para.Runs[i])
		}
	}

	how := doc.Blocks[3]
	if how.Kind != KindHeading || how.Level != 3 || how.Text != "How It Works" {
		t.Errorf("block 3: expected level-3 heading %q, got %#v", "How It Works", how)
	}

	bullet := doc.Blocks[4]
	if bullet.Kind != KindListItem || bullet.List != ListBullet {
		t.Errorf("block 4: expected bullet item, got %#v", bullet)
	}
	if len(bullet.Runs) != 1 || bullet.Runs[0] != (Run{Text: "step one"}) {
		t.Errorf("block 4: expected run %q, got %#v", "step one", bullet.Runs)
	}

	numbered := doc.Blocks[5]
	if numbered.Kind != KindListItem || numbered.List != ListNumbered {
		t.Errorf("block 5: expected numbered item, got %#v", numbered)
	}
	if len(numbered.Runs) != 1 || numbered.Runs[0] != (Run{Text: "first"}) {
		t.Errorf("block 5: expected run %q, got %#v", "first", numbered.Runs)
	}

	wantTOC := []TOCEntry{{Level: 2, Text: "Solution"}, {Level: 3, Text: "How It Works"}}
	if len(doc.TOC) != len(wantTOC) {
		t.Fatalf("expected %d toc entries, got %#v", len(wantTOC), doc.TOC)
	}
	for i := range wantTOC {
		if doc.TOC[i] != wantTOC[i] {
			t.Errorf("toc %d: expected %#v, got %#v", i, wantTOC[i], doc.TOC[i])
		}
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	doc := Build("")
	if len(doc.Blocks) != 0 {
		t.Errorf("expected no blocks, got %#v", doc.Blocks)
	}
	if len(doc.TOC) != 0 {
		t.Errorf("expected no toc entries, got %#v", doc.TOC)
	}
}

func TestBuild_UnterminatedBold(t *testing.T) {
	doc := Build("**unterminated bold")
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %#v", doc.Blocks)
	}
	b := doc.Blocks[0]
	if b.Kind != KindParagraph || len(b.Runs) != 1 {
		t.Fatalf("expected single-run paragraph, got %#v", b)
	}
	if b.Runs[0].Bold || b.Runs[0].Text != "**unterminated bold" {
		t.Errorf("expected literal plain run, got %#v", b.Runs[0])
	}
}

func TestBuild_DisplayLevelClamped(t *testing.T) {
	doc := Build("###### Deep Heading\n# Top")
	for _, b := range doc.Blocks {
		if b.Kind != KindHeading {
			continue
		}
		if b.Level < 1 || b.Level > 3 {
			t.Errorf("heading %q: display level %d out of range", b.Text, b.Level)
		}
	}
	if doc.Blocks[0].Level != 2 {
		t.Errorf("expected deep heading clamped to 2, got %d", doc.Blocks[0].Level)
	}
}

func TestBuild_TitleExcludedFromTOC(t *testing.T) {
	doc := Build("# Only Title\n## Kept\n### Also Kept")
	if len(doc.TOC) != 2 {
		t.Fatalf("expected 2 toc entries, got %#v", doc.TOC)
	}
	if doc.TOC[0] != (TOCEntry{Level: 2, Text: "Kept"}) {
		t.Errorf("unexpected first toc entry: %#v", doc.TOC[0])
	}
	if doc.TOC[1] != (TOCEntry{Level: 3, Text: "Also Kept"}) {
		t.Errorf("unexpected second toc entry: %#v", doc.TOC[1])
	}
}

func TestBuild_TOCKeepsDuplicates(t *testing.T) {
	doc := Build("## Repeat\ntext\n## Repeat")
	if len(doc.TOC) != 2 {
		t.Fatalf("expected duplicate toc entries, got %#v", doc.TOC)
	}
}

func TestBuild_HowItWorksWithoutSolution(t *testing.T) {
	// Without an earlier Solution heading the override must not fire.
	doc := Build("### How It Works\ndetails")
	h := doc.Blocks[0]
	if h.Level != 2 {
		t.Errorf("expected clamped level 2, got %d", h.Level)
	}
}

func TestBuild_SolutionScopeIsWholeDocument(t *testing.T) {
	// The override keys off any earlier Solution heading, even across
	// unrelated sections.
	input := "## Solution\ntext\n## Impacts\nmore\n#### How It Works"
	doc := Build(input)
	last := doc.Blocks[len(doc.Blocks)-1]
	if last.Kind != KindHeading || last.Text != "How It Works" {
		t.Fatalf("unexpected last block: %#v", last)
	}
	if last.Level != 3 {
		t.Errorf("expected override to level 3, got %d", last.Level)
	}
}

func TestBuild_SolutionHeadingKeepsClampedLevel(t *testing.T) {
	doc := Build("#### Proposed Solution")
	if doc.Blocks[0].Level != 2 {
		t.Errorf("expected Solution heading clamped to 2, got %d", doc.Blocks[0].Level)
	}
}

func TestBuild_BlockOrderMatchesInput(t *testing.T) {
	input := "first\n# Head\nsecond\nthird\n## Next\n- item"
	doc := Build(input)
	wantKinds := []BlockKind{KindParagraph, KindHeading, KindParagraph, KindParagraph, KindHeading, KindListItem}
	if len(doc.Blocks) != len(wantKinds) {
		t.Fatalf("expected %d blocks, got %d", len(wantKinds), len(doc.Blocks))
	}
	for i, k := range wantKinds {
		if doc.Blocks[i].Kind != k {
			t.Errorf("block %d: expected kind %v, got %v", i, k, doc.Blocks[i].Kind)
		}
	}
}

// Rebuilding from serialized-back plain text must not resurrect bold spans.
func TestBuild_Idempotence(t *testing.T) {
	doc := Build("This **changed** again.")
	var plain strings.Builder
	for _, r := range doc.Blocks[0].Runs {
		plain.WriteString(r.Text)
	}

	rebuilt := Build(plain.String())
	for _, b := range rebuilt.Blocks {
		for _, r := range b.Runs {
			if r.Bold {
				t.Errorf("expected no bold runs after round trip, got %#v", r)
			}
		}
	}
}

func TestBuild_BlankLinesAreSeparators(t *testing.T) {
	doc := Build("one\n\ntwo\n\n\nthree")
	if len(doc.Blocks) != 3 {
		t.Fatalf("expected 3 paragraphs, got %#v", doc.Blocks)
	}
}
