package chunker

import (
	"strings"
	"testing"
)

func TestSplit_UnderThresholdPassesThrough(t *testing.T) {
	text := "short text that fits in one analysis call"
	chunks := Split(text, DefaultConfig())
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("expected text unchanged, got %q", chunks[0])
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	if chunks := Split("", DefaultConfig()); chunks != nil {
		t.Errorf("expected no chunks for empty input, got %#v", chunks)
	}
	if chunks := Split("   \n\n  ", DefaultConfig()); chunks != nil {
		t.Errorf("expected no chunks for whitespace input, got %#v", chunks)
	}
}

func TestSplit_RespectsChunkSize(t *testing.T) {
	// Many small paragraphs, well above the threshold in total.
	para := strings.Repeat("word ", 40) // ~200 chars
	text := strings.TrimSpace(strings.Repeat(para+"\n\n", 30))

	cfg := Config{Threshold: 1000, ChunkSize: 600, Overlap: 100}
	chunks := Split(text, cfg)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		// Allow slack for a paragraph that lands on the boundary.
		if len(c) > cfg.ChunkSize+250 {
			t.Errorf("chunk %d exceeds size bound: %d chars", i, len(c))
		}
	}
}

func TestSplit_OverlapCarriedForward(t *testing.T) {
	para := strings.Repeat("alpha beta gamma ", 20)
	text := strings.TrimSpace(strings.Repeat(strings.TrimSpace(para)+"\n\n", 10))

	cfg := Config{Threshold: 500, ChunkSize: 700, Overlap: 60}
	chunks := Split(text, cfg)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// The start of the second chunk should repeat material from the end of
	// the first.
	tail := chunks[0][len(chunks[0])-cfg.Overlap:]
	words := strings.Fields(tail)
	if len(words) < 2 {
		t.Fatal("overlap tail too short to check")
	}
	if !strings.Contains(chunks[1], words[1]) {
		t.Errorf("expected chunk 1 to carry overlap, tail %q, chunk start %q",
			tail, chunks[1][:min(80, len(chunks[1]))])
	}
}

func TestSplit_LongParagraphSplitBySentences(t *testing.T) {
	sentence := "This sentence is repeated to build one giant paragraph. "
	text := strings.TrimSpace(strings.Repeat(sentence, 100)) // ~5600 chars, no blank lines

	cfg := Config{Threshold: 1000, ChunkSize: 800, Overlap: 0}
	chunks := Split(text, cfg)

	if len(chunks) < 2 {
		t.Fatalf("expected sentence-level split, got %d chunks", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > cfg.ChunkSize+100 {
			t.Errorf("chunk %d too large: %d chars", i, len(c))
		}
		if strings.TrimSpace(c) == "" {
			t.Errorf("chunk %d is blank", i)
		}
	}
}

func TestSplit_GiantSentenceHardCut(t *testing.T) {
	text := strings.Repeat("x", 5000) // no sentence boundaries at all
	cfg := Config{Threshold: 1000, ChunkSize: 800, Overlap: 50}
	chunks := Split(text, cfg)

	if len(chunks) < 2 {
		t.Fatalf("expected hard cuts, got %d chunks", len(chunks))
	}
	var total int
	for _, c := range chunks {
		total += len(c)
	}
	if total < len(text) {
		t.Errorf("content lost: %d of %d chars", total, len(text))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Threshold != 3000 || cfg.ChunkSize != 2000 || cfg.Overlap != 200 {
		t.Errorf("unexpected defaults: %#v", cfg)
	}
}
