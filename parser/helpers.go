package parser

func (p *Parser) read() {
	if p.readpos >= len(p.doc) {
		p.ch = 0
	} else {
		p.ch = p.doc[p.readpos]
	}
	p.pos = p.readpos
	p.readpos++
}

func (p *Parser) peek() rune {
	return p.peekN(1)
}

func (p *Parser) peekN(n int) rune {
	if p.pos+n < 0 || p.pos+n >= len(p.doc) {
		return 0
	}
	return p.doc[p.pos+n]
}

func (p *Parser) setPos(pos int) {
	if pos < 0 {
		return
	}
	p.pos = pos
	p.readpos = pos + 1
	if pos >= len(p.doc) {
		p.ch = 0
	} else {
		p.ch = p.doc[pos]
	}
}

func (p *Parser) aheadIs(s string) bool {
	for i, c := range []rune(s) {
		if p.peekN(i) != c {
			return false
		}
	}
	return true
}

func (p *Parser) remaining() string {
	if p.pos >= len(p.doc) {
		return ""
	}
	return string(p.doc[p.pos:])
}

// fenceIndex finds the next literal "```" at or after the cursor, anywhere
// in the remaining input, not just at a line start.
func (p *Parser) fenceIndex() int {
	for i := p.pos; i+2 < len(p.doc); i++ {
		if p.doc[i] == '`' && p.doc[i+1] == '`' && p.doc[i+2] == '`' {
			return i
		}
	}
	return -1
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isAlnum(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
