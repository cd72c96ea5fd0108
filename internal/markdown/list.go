package markdown

import (
	"regexp"
	"strings"
)

type lineKind int

const (
	linePlain lineKind = iota
	lineBullet
	lineNumbered
)

var numberedPrefix = regexp.MustCompile(`^\d+\. `)

// classifyLine decides how a body line renders and returns its content with
// the list marker removed. Bullet is checked before numbered, numbered before
// plain; the order is the normative tie-break.
func classifyLine(line string) (lineKind, string) {
	trimmed := strings.TrimLeft(line, " \t")
	switch {
	case strings.HasPrefix(trimmed, "- "):
		return lineBullet, trimmed[2:]
	case numberedPrefix.MatchString(trimmed):
		return lineNumbered, numberedPrefix.ReplaceAllString(trimmed, "")
	}
	return linePlain, line
}
