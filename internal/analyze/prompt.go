package analyze

import (
	"fmt"
	"strings"
)

// Request carries the free-text fields of one document generation request.
type Request struct {
	StoryName         string
	StoryDescription  string
	CodeSnippet       string
	AdditionalContext string
}

// analysisFormat is the exact output shape the converter downstream expects:
// a level-2 Solution heading with level-3 subsections. The heading titles are
// load-bearing — the heading classifier keys its level override off them.
const analysisFormat = `Provide technical explanation in this exact format:

## Solution
[Overall what changed]

### How It Works
[Technical details with code references]

### Impacts
[Potential effects on system]`

// BuildPrompt assembles the analysis prompt for one chunk of original code.
// part and total are 1-based; total <= 1 means the input was not chunked.
func BuildPrompt(req Request, originalCode string, part, total int) string {
	var sb strings.Builder

	sb.WriteString("Analyze these code changes:\n\n")

	if total > 1 {
		fmt.Fprintf(&sb, "Note: the original code is split into %d parts; this is part %d. Analyze only what this part shows.\n\n", total, part)
	}

	sb.WriteString("Original Code (Key Sections):\n")
	if strings.TrimSpace(originalCode) != "" {
		sb.WriteString(originalCode)
	} else {
		sb.WriteString("No original code provided")
	}
	sb.WriteString("\n\nModified Code:\n")
	if strings.TrimSpace(req.CodeSnippet) != "" {
		sb.WriteString(req.CodeSnippet)
	} else {
		sb.WriteString("No changes detected")
	}

	if strings.TrimSpace(req.AdditionalContext) != "" {
		sb.WriteString("\n\nAdditional Context & Instructions:\n")
		sb.WriteString(req.AdditionalContext)
	}

	sb.WriteString("\n\n")
	sb.WriteString(analysisFormat)

	return sb.String()
}

// JoinResults merges per-chunk analyses into one markdown document, dropping
// empty parts.
func JoinResults(parts []string) string {
	var kept []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
