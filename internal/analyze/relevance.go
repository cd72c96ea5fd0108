package analyze

import (
	"regexp"
	"strings"
)

// declPattern matches lines that open a definition scope in the languages the
// uploader accepts: imports, Python def/class, Go/JS functions, Java/C-style
// class and method signatures.
var declPattern = regexp.MustCompile(
	`^\s*(import\s+.+|from\s+.+\s+import\s+.+|def\s+\w+\(|class\s+\w+|func\s+(\(\w+ [^)]+\)\s*)?\w+\(|function\s+\w+\(|(public|private|protected)\s+.+\()`,
)

const (
	relevantLimit  = 5000 // Max characters of relevant context to keep.
	contextWindow  = 200  // Characters kept around each changed line found in the original.
	changedLineCap = 10   // Changed lines probed against the original.
)

// RelevantCode filters the full original source down to the sections that
// matter for analyzing the change: declaration lines, plus context windows
// around changed lines that also appear in the original. Falls back to a
// plain prefix if nothing matches.
func RelevantCode(full, changed string) string {
	if strings.TrimSpace(full) == "" {
		return ""
	}

	var relevant []string
	for _, line := range strings.Split(full, "\n") {
		if declPattern.MatchString(line) {
			relevant = append(relevant, line)
		}
	}

	changedLines := strings.Split(changed, "\n")
	if len(changedLines) > changedLineCap {
		changedLines = changedLines[:changedLineCap]
	}
	for _, cl := range changedLines {
		cl = strings.TrimSpace(cl)
		if cl == "" {
			continue
		}
		idx := strings.Index(full, cl)
		if idx < 0 {
			continue
		}
		lo := idx - contextWindow
		if lo < 0 {
			lo = 0
		}
		hi := idx + contextWindow
		if hi > len(full) {
			hi = len(full)
		}
		relevant = append(relevant, "\n# Context for changes:\n"+full[lo:hi])
	}

	if len(relevant) == 0 {
		return truncate(full, relevantLimit)
	}

	return truncate(strings.Join(relevant, "\n"), relevantLimit)
}
