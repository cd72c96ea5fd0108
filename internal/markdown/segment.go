package markdown

import "strings"

type segmentKind int

const (
	segBody segmentKind = iota
	segHeading
)

// segment is a heading line or a run of body lines between heading lines.
type segment struct {
	kind segmentKind
	text string
}

// splitSegments splits raw text into an ordered sequence of heading and body
// segments. A heading segment is a single line whose first character is '#',
// recognized at the start of any line. Consecutive non-heading lines form one
// body segment. Whitespace-only segments are dropped.
func splitSegments(text string) []segment {
	var segs []segment
	var body []string

	flush := func() {
		joined := strings.Join(body, "\n")
		if strings.TrimSpace(joined) != "" {
			segs = append(segs, segment{kind: segBody, text: joined})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			flush()
			segs = append(segs, segment{kind: segHeading, text: line})
			continue
		}
		body = append(body, line)
	}
	flush()

	return segs
}
