package transpiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"mdhtml/parser"
	"mdhtml/translator"
)

// ToHTML reads a whole markdown document from stdin and writes its HTML
// rendering to stdout. When dumpAST is set, the parsed tree is printed to
// stderr between the two stages. A trailing newline is appended to the input
// if absent; every line-terminated grammar rule needs to see one.
func ToHTML(stdin io.Reader, stdout, stderr io.Writer, dumpAST bool) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	text := string(data)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	doc, err := parser.Parse(text)
	if err != nil {
		return errors.Wrap(err, "parse markdown")
	}
	if dumpAST {
		spew.Fdump(stderr, doc)
	}
	if _, err := fmt.Fprintln(stdout, translator.Translate(doc)); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}
