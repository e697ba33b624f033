package ast

// Inline is one element of a line's content. The concatenated elements of a
// Text reproduce the source line left to right, escapes decoded.
type Inline interface {
	HTML() string
	inline()
}

// Text is the inline sequence of one logical line. It may be empty.
type Text []Inline

// Block is a block-level construct spanning one or more whole source lines.
type Block interface {
	HTML() string
}

// Document is the ordered block list of one parsed document.
type Document []Block

type Plaintext struct {
	Text string
}

type Bold struct {
	Text string
}

type Italic struct {
	Text string
}

type Strike struct {
	Text string
}

type InlineCode struct {
	Code string
}

type Link struct {
	Label string
	URL   string
}

type Image struct {
	Alt string
	URL string
}

type Heading struct {
	Level   int
	Content Text
}

type UnorderedList struct {
	Items []Text
}

type OrderedList struct {
	Items []Text
}

// Line is a bare paragraph line, possibly empty (a blank source line).
type Line struct {
	Content Text
}

type Codeblock struct {
	Lang string
	Body string
}

// Rule is a horizontal rule.
type Rule struct{}

func (*Plaintext) inline()  {}
func (*Bold) inline()       {}
func (*Italic) inline()     {}
func (*Strike) inline()     {}
func (*InlineCode) inline() {}
func (*Link) inline()       {}
func (*Image) inline()      {}
