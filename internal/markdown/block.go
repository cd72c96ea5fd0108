// Package markdown converts the constrained markdown emitted by the analysis
// step into a flat, ordered block document ready for docx serialization.
//
// The dialect is deliberately small: ATX headings, "- " bullets, "1. "
// numbered items, and **bold** spans. Everything else is a plain paragraph
// line. There is no nesting; block order is the only structural relationship.
package markdown

// Run is a contiguous span of text sharing one formatting attribute.
// Concatenating the run texts of a block reproduces the visible characters
// of the source line with the emphasis markers stripped.
type Run struct {
	Text string
	Bold bool
}

// BlockKind discriminates the Block variants.
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindParagraph
	KindListItem
)

func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindListItem:
		return "list_item"
	}
	return "unknown"
}

// ListKind is the style of a list item.
type ListKind int

const (
	ListBullet ListKind = iota
	ListNumbered
)

func (k ListKind) String() string {
	if k == ListNumbered {
		return "numbered"
	}
	return "bullet"
}

// Block is one structural unit of the output document.
type Block struct {
	Kind BlockKind

	// Heading fields. Level is the display level, always 1..3.
	Level int
	Text  string

	// Paragraph and list item fields.
	List ListKind
	Runs []Run
}

// TOCEntry is a navigation entry recorded for every heading whose written
// depth is greater than 1. The document title stays out of the contents list.
type TOCEntry struct {
	Level int // nominal level, as written in the source
	Text  string
}

// Document is the ordered output of a conversion.
type Document struct {
	Blocks []Block
	TOC    []TOCEntry
}
