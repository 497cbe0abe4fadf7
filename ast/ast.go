// Package ast declares the types produced by the markdown parser before they
// are assembled into an HTML node tree.
package ast // import "akhil.cc/sitegen/ast"

// SpanKind is the inline formatting of a TextSpan.
type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var kindNames = [...]string{
	Plain:  "text",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// TextSpan is a run of inline text with a single kind.
// URL is only set for Link and Image spans.
type TextSpan struct {
	Text string
	Kind SpanKind
	URL  string
}

// Span returns a TextSpan without a URL.
func Span(text string, kind SpanKind) TextSpan {
	return TextSpan{Text: text, Kind: kind}
}

// LinkSpan returns a Link span pointing at url.
func LinkSpan(text, url string) TextSpan {
	return TextSpan{Text: text, Kind: Link, URL: url}
}

// ImageSpan returns an Image span with alt text and a source url.
func ImageSpan(alt, url string) TextSpan {
	return TextSpan{Text: alt, Kind: Image, URL: url}
}

// BlockType is the classification of a block of markdown.
type BlockType int

const (
	Paragraph BlockType = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

var blockNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	CodeBlock:     "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

func (t BlockType) String() string {
	if t < 0 || int(t) >= len(blockNames) {
		return "unknown"
	}
	return blockNames[t]
}

// Block is a trimmed, blank-line delimited chunk of a document.
type Block struct {
	Type BlockType
	Text string
}

// File is a parsed markdown document.
type File struct {
	Blocks []Block
}
