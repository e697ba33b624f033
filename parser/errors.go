package parser

import "fmt"

// ParseError is the only failure the parser produces. It records which
// grammar rule was being attempted and where the input stopped making sense;
// no partial document accompanies it.
type ParseError struct {
	Rule      string // grammar alternative being attempted
	Remaining string // unconsumed input from the failure point
	Offset    int    // rune offset into the normalized document

	doc   []rune
	msg   string
	cause error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("line %d: %s: %s", e.Line(), e.Rule, e.cause)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line(), e.Rule, e.msg)
}

func (e *ParseError) Unwrap() error { return e.cause }

// Line reports the 1-based source line of the failure.
func (e *ParseError) Line() int {
	ln := 1
	for i := 0; i < e.Offset && i < len(e.doc); i++ {
		if e.doc[i] == '\n' {
			ln++
		}
	}
	return ln
}

func (p *Parser) failf(rule, format string, args ...interface{}) error {
	return &ParseError{
		Rule:      rule,
		Remaining: p.remaining(),
		Offset:    p.pos,
		doc:       p.doc,
		msg:       fmt.Sprintf(format, args...),
	}
}

func (p *Parser) fail(rule string, cause error) error {
	return &ParseError{
		Rule:      rule,
		Remaining: p.remaining(),
		Offset:    p.pos,
		doc:       p.doc,
		cause:     cause,
	}
}
