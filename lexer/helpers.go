package lexer

import "github.com/pkg/errors"

// Characters a backslash may escape into a plain run.
const escapable = "*`[]~!"

func isEscapable(ch rune) bool {
	for _, c := range escapable {
		if c == ch {
			return true
		}
	}
	return false
}

func peek(s []rune, i int) rune {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

// hasSpan checks for a delimited span opening at s[i]. The content runs to
// the next delim rune and must be non-empty. Returns the content and the
// index of the closing delimiter, or -1 when the span does not close.
func hasSpan(s []rune, i int, delim rune) (string, int) {
	if peek(s, i) != delim {
		return "", -1
	}
	for j := i + 1; j < len(s); j++ {
		if s[j] == delim {
			if j == i+1 {
				return "", -1
			}
			return string(s[i+1 : j]), j
		}
	}
	return "", -1
}

// hasBold checks for a bold span opening at s[i]. The content runs to the
// next '*', which must start a closing "**" and must not be adjacent to the
// opener. Returns the content and the index of the second closing '*'.
func hasBold(s []rune, i int) (string, int) {
	if peek(s, i) != '*' || peek(s, i+1) != '*' {
		return "", -1
	}
	for j := i + 2; j < len(s); j++ {
		if s[j] == '*' {
			if j == i+2 || peek(s, j+1) != '*' {
				return "", -1
			}
			return string(s[i+2 : j]), j + 1
		}
	}
	return "", -1
}

// hasTarget parses a bracketed text followed immediately by a parenthesized
// target, opening at s[i] == '['. Both parts must be non-empty and close on
// the line. Returns the text, the target and the index of the closing ')'.
func hasTarget(s []rune, i int) (text, target string, pos int, err error) {
	if peek(s, i) != '[' {
		return "", "", -1, errors.Errorf("expected '[' at column %d", i+1)
	}
	close1 := -1
	for j := i + 1; j < len(s); j++ {
		if s[j] == ']' {
			close1 = j
			break
		}
	}
	if close1 < 0 {
		return "", "", -1, errors.Errorf("no closing ']' on the line for '[' at column %d", i+1)
	}
	if close1 == i+1 {
		return "", "", -1, errors.Errorf("empty brackets at column %d", i+1)
	}
	if peek(s, close1+1) != '(' {
		return "", "", -1, errors.Errorf("expected '(' right after ']' at column %d", close1+2)
	}
	close2 := -1
	for j := close1 + 2; j < len(s); j++ {
		if s[j] == ')' {
			close2 = j
			break
		}
	}
	if close2 < 0 {
		return "", "", -1, errors.Errorf("no closing ')' on the line for '(' at column %d", close1+2)
	}
	if close2 == close1+2 {
		return "", "", -1, errors.Errorf("empty target at column %d", close1+3)
	}
	return string(s[i+1 : close1]), string(s[close1+2 : close2]), close2, nil
}
