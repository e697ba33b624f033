package lexer

import (
	"strings"

	"github.com/pkg/errors"

	"mdhtml/ast"
)

// Tokenize converts one line's text, without its terminator, into the
// ordered inline sequence for that line. Concatenating the elements of the
// result reproduces the input exactly, escapes decoded.
//
// A span delimiter with no same-line closing delimiter is consumed as plain
// text. A bracket opener that does not form a well-formed link or image, or
// a backslash not followed by an escapable character, fails the tokenize;
// the escapes exist so those characters can be written literally.
func Tokenize(line string) (ast.Text, error) {
	s := []rune(line)
	var (
		buff  strings.Builder
		items ast.Text
	)
	flush := func() {
		if buff.Len() > 0 {
			items = append(items, &ast.Plaintext{Text: buff.String()})
			buff.Reset()
		}
	}

LOOP:
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '*':
			if peek(s, i+1) == '*' {
				if text, pos := hasBold(s, i); pos > i {
					flush()
					items = append(items, &ast.Bold{Text: text})
					i = pos
					continue LOOP
				}
			} else if text, pos := hasSpan(s, i, '*'); pos > i {
				flush()
				items = append(items, &ast.Italic{Text: text})
				i = pos
				continue LOOP
			}
			buff.WriteRune(ch)
		case '~':
			if text, pos := hasSpan(s, i, '~'); pos > i {
				flush()
				items = append(items, &ast.Strike{Text: text})
				i = pos
				continue LOOP
			}
			buff.WriteRune(ch)
		case '`':
			if text, pos := hasSpan(s, i, '`'); pos > i {
				flush()
				items = append(items, &ast.InlineCode{Code: text})
				i = pos
				continue LOOP
			}
			buff.WriteRune(ch)
		case '!':
			if peek(s, i+1) == '[' {
				alt, url, pos, err := hasTarget(s, i+1)
				if err != nil {
					return nil, errors.Wrap(err, "image")
				}
				flush()
				items = append(items, &ast.Image{Alt: alt, URL: url})
				i = pos
				continue LOOP
			}
			buff.WriteRune(ch)
		case '[':
			label, url, pos, err := hasTarget(s, i)
			if err != nil {
				return nil, errors.Wrap(err, "link")
			}
			flush()
			items = append(items, &ast.Link{Label: label, URL: url})
			i = pos
			continue LOOP
		case '\\':
			if isEscapable(peek(s, i+1)) {
				buff.WriteRune(s[i+1])
				i++
				continue LOOP
			}
			return nil, errors.Errorf("stray '\\' at column %d", i+1)
		default:
			buff.WriteRune(ch)
		}
	}
	flush()
	return items, nil
}
