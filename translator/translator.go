// Package translator renders a parsed document to HTML markup. Rendering is
// a pure function of the block list and cannot fail; every node kind has a
// defined rendering. User text is emitted as written, without escaping.
package translator

import (
	"strings"

	"mdhtml/ast"
)

// Translate maps each block to its markup, one block per output line.
func Translate(doc ast.Document) string {
	parts := make([]string, 0, len(doc))
	for _, block := range doc {
		parts = append(parts, block.HTML())
	}
	return strings.Join(parts, "\n")
}
