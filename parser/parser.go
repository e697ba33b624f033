package parser

import (
	"strings"

	"mdhtml/ast"
	"mdhtml/lexer"
)

// Parser walks the document rune by rune and yields one block at a time.
// Block rules are tried in a fixed order at each position: horizontal rule,
// heading, unordered list, ordered list, code fence, plain line. The first
// rule whose marker matches is committed to; a committed rule that cannot
// complete aborts the whole parse.
type Parser struct {
	doc          []rune
	ch           rune
	pos, readpos int
}

func New(s string) *Parser {
	s = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
	p := &Parser{
		doc: []rune(s),
	}
	p.read()
	return p
}

// Parse converts the whole document text into its ordered block list.
// The result is all-or-nothing: any malformed construct returns a
// *ParseError and no blocks.
func Parse(text string) (ast.Document, error) {
	p := New(text)
	var doc ast.Document
	for p.ch != 0 {
		block, err := p.Next()
		if err != nil {
			return nil, err
		}
		doc = append(doc, block)
	}
	if len(doc) == 0 {
		return nil, p.failf("document", "empty input")
	}
	return doc, nil
}

// Next returns the block starting at the cursor, or nil at end of input.
func (p *Parser) Next() (ast.Block, error) {
	if p.ch == 0 {
		return nil, nil
	}
	if rule, ok := p.ruleAhead(); ok {
		return rule, nil
	}
	if p.ch == '#' {
		return p.heading()
	}
	if list, ok, err := p.unorderedList(); ok || err != nil {
		return list, err
	}
	if list, ok, err := p.orderedList(); ok || err != nil {
		return list, err
	}
	if p.aheadIs("```") {
		return p.codeblock()
	}
	return p.line()
}

func (p *Parser) ruleAhead() (*ast.Rule, bool) {
	if !p.aheadIs("---\n") {
		return nil, false
	}
	for i := 0; i < 4; i++ {
		p.read()
	}
	return &ast.Rule{}, true
}

func (p *Parser) heading() (*ast.Heading, error) {
	level := 0
	for p.ch == '#' {
		level++
		p.read()
	}
	// exactly one space separates the marker from the title
	if p.ch != ' ' {
		return nil, p.failf("heading", "expected a space after %q", strings.Repeat("#", level))
	}
	p.read()
	content, err := p.lineText("heading")
	if err != nil {
		return nil, err
	}
	return &ast.Heading{Level: level, Content: content}, nil
}

func (p *Parser) unorderedList() (*ast.UnorderedList, bool, error) {
	if !p.aheadIs("- ") {
		return nil, false, nil
	}
	var items []ast.Text
	for p.aheadIs("- ") {
		p.read()
		p.read()
		item, err := p.lineText("unordered list")
		if err != nil {
			return nil, true, err
		}
		items = append(items, item)
	}
	return &ast.UnorderedList{Items: items}, true, nil
}

func (p *Parser) orderedList() (*ast.OrderedList, bool, error) {
	if !p.orderedMarkerAhead() {
		return nil, false, nil
	}
	var items []ast.Text
	for p.orderedMarkerAhead() {
		for isDigit(p.ch) {
			p.read()
		}
		p.read() // '.'
		p.read() // ' '
		item, err := p.lineText("ordered list")
		if err != nil {
			return nil, true, err
		}
		items = append(items, item)
	}
	return &ast.OrderedList{Items: items}, true, nil
}

// orderedMarkerAhead reports whether the cursor sits on digits followed by
// ". ". A digit line without the full marker is not a list item.
func (p *Parser) orderedMarkerAhead() bool {
	if !isDigit(p.ch) {
		return false
	}
	n := 0
	for isDigit(p.peekN(n)) {
		n++
	}
	return p.peekN(n) == '.' && p.peekN(n+1) == ' '
}

func (p *Parser) codeblock() (*ast.Codeblock, error) {
	for i := 0; i < 3; i++ {
		p.read()
	}
	var lang strings.Builder
	for isAlnum(p.ch) {
		lang.WriteRune(p.ch)
		p.read()
	}
	if p.ch != '\n' {
		return nil, p.failf("code fence", "expected a newline after the opening fence")
	}
	p.read()
	end := p.fenceIndex()
	if end < 0 {
		return nil, p.failf("code fence", "no closing fence")
	}
	body := string(p.doc[p.pos:end])
	p.setPos(end + 3)
	return &ast.Codeblock{Lang: lang.String(), Body: body}, nil
}

func (p *Parser) line() (*ast.Line, error) {
	content, err := p.lineText("line")
	if err != nil {
		return nil, err
	}
	return &ast.Line{Content: content}, nil
}

// lineText tokenizes from the cursor through the next newline and consumes
// the terminator. Every line-terminated rule must see one; the caller of
// Parse guarantees the document ends in a newline.
func (p *Parser) lineText(rule string) (ast.Text, error) {
	start := p.pos
	end := -1
	for i := p.pos; i < len(p.doc); i++ {
		if p.doc[i] == '\n' {
			end = i
			break
		}
	}
	if end < 0 {
		p.setPos(len(p.doc))
		return nil, p.failf(rule, "missing line terminator")
	}
	text, err := lexer.Tokenize(string(p.doc[start:end]))
	if err != nil {
		return nil, p.fail(rule, err)
	}
	p.setPos(end + 1)
	return text, nil
}
