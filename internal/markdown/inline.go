package markdown

import "strings"

const boldMarker = "**"

// splitRuns splits a content line into alternating plain and bold runs.
// A bold run requires a matched pair of ** markers; a stray or unterminated
// marker is kept as literal text, so an odd marker count never fails.
func splitRuns(line string) []Run {
	var runs []Run
	rest := line

	for {
		open := strings.Index(rest, boldMarker)
		if open < 0 {
			break
		}
		closing := strings.Index(rest[open+2:], boldMarker)
		if closing < 0 {
			// No closing marker: the rest of the line is literal.
			break
		}
		end := open + 2 + closing

		if open > 0 {
			runs = append(runs, Run{Text: rest[:open]})
		}
		runs = append(runs, Run{Text: rest[open+2 : end], Bold: true})
		rest = rest[end+2:]
	}

	if rest != "" || len(runs) == 0 {
		runs = append(runs, Run{Text: rest})
	}
	return runs
}
