// Package chunker splits oversized source material into pieces small enough
// for a single analysis call, preserving paragraph and sentence boundaries
// where possible.
package chunker

import "strings"

// Config controls chunking behavior. All sizes are in characters.
type Config struct {
	Threshold int // Texts at or under this length pass through unsplit.
	ChunkSize int // Target chunk size.
	Overlap   int // Overlap carried from the end of one chunk into the next.
}

// DefaultConfig returns sensible defaults, tuned for a model context window
// of roughly 8k tokens.
func DefaultConfig() Config {
	return Config{
		Threshold: 3000,
		ChunkSize: 2000,
		Overlap:   200,
	}
}

// Split breaks text into chunks of approximately cfg.ChunkSize characters.
// Text at or under cfg.Threshold is returned whole. Empty input yields no
// chunks.
func Split(text string, cfg Config) []string {
	if cfg.Threshold <= 0 {
		cfg.Threshold = 3000
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 2000
	}
	if cfg.Overlap < 0 {
		cfg.Overlap = 0
	}

	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) <= cfg.Threshold {
		return []string{text}
	}
	return splitText(text, cfg.ChunkSize, cfg.Overlap)
}

// splitText packs paragraphs into chunks of approximately target characters,
// splitting oversized paragraphs by sentences.
func splitText(text string, target, overlap int) []string {
	paragraphs := splitByParagraphs(text)

	var result []string
	var current strings.Builder

	for _, para := range paragraphs {
		// A single paragraph above the target is split by sentences.
		if len(para) > target {
			if current.Len() > 0 {
				result = append(result, current.String())
				current.Reset()
			}
			result = append(result, splitBySentences(para, target, overlap)...)
			continue
		}

		if current.Len() > 0 && current.Len()+2+len(para) > target {
			result = append(result, current.String())
			tail := overlapText(current.String(), overlap)
			current.Reset()
			current.WriteString(tail)
		}

		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}

	if current.Len() > 0 {
		result = append(result, current.String())
	}

	return result
}

// splitByParagraphs splits on double-newlines, dropping blanks.
func splitByParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// splitBySentences packs sentences into chunks of approximately target
// characters. A pathological sentence longer than the target is hard-cut.
func splitBySentences(text string, target, overlap int) []string {
	sentences := splitSentences(text)

	var result []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			result = append(result, current.String())
			tail := overlapText(current.String(), overlap)
			current.Reset()
			current.WriteString(tail)
		}
	}

	for _, sent := range sentences {
		for len(sent) > target {
			flush()
			current.Reset()
			result = append(result, sent[:target])
			sent = sent[target:]
		}
		if sent == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+1+len(sent) > target {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sent)
	}

	if current.Len() > 0 {
		result = append(result, current.String())
	}

	return result
}

// splitSentences does basic sentence splitting on terminal punctuation
// followed by a space.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// overlapText extracts the last ~n characters of text on a word boundary.
func overlapText(text string, n int) string {
	if n <= 0 || len(text) <= n {
		return ""
	}
	cut := text[len(text)-n:]
	if idx := strings.IndexAny(cut, " \n"); idx >= 0 {
		cut = cut[idx+1:]
	}
	return strings.TrimSpace(cut)
}
