package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdhtml/ast"
	"mdhtml/parser"
)

func render(t *testing.T, in string) string {
	t.Helper()
	doc, err := parser.Parse(in)
	require.NoError(t, err, "input %q", in)
	return Translate(doc)
}

func TestTranslateBlocks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"# h1\n", "<h1>h1</h1>"},
		{"#### h4\n", "<h4>h4</h4>"},
		{"- a\n- b\n- c\n", "<ul><li>a</li><li>b</li><li>c</li></ul>"},
		{"1. a\n2. b\n", "<ol><li>a</li><li>b</li></ol>"},
		{"---\n", "<hr/>"},
		{"just a line\n", "just a line"},
		{"```\nx := 1\n```\n", "<pre><code>x := 1\n</code></pre>\n"},
		{"```go\nx := 1\n```\n", "<pre><code class=\"language-go\">x := 1\n</code></pre>\n"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, render(t, test.in), "input %q", test.in)
	}
}

func TestTranslateInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**b**\n", "<strong>b</strong>"},
		{"*i*\n", "<em>i</em>"},
		{"~s~\n", "<del>s</del>"},
		{"`c`\n", "<code>c</code>"},
		{"[label](url)\n", `<a href="url">label</a>`},
		{"![alt](url)\n", `<img src="url" alt="alt"/>`},
		{"a **b** c\n", "a <strong>b</strong> c"},
		{`\*\[\]` + "\n", "*[]"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, render(t, test.in), "input %q", test.in)
	}
}

// Blocks render one per line; an empty source line renders as an empty line
// with no wrapping tag.
func TestTranslateJoinsBlocks(t *testing.T) {
	got := render(t, "# a\n\ntext\n")
	assert.Equal(t, "<h1>a</h1>\n\ntext", got)
}

// Text passes through as written. Deliberate: the dialect does no output
// escaping whatsoever.
func TestTranslateDoesNotEscape(t *testing.T) {
	assert.Equal(t, "a <div> & \"b\"", render(t, "a <div> & \"b\"\n"))
	assert.Equal(t, "<pre><code><b>raw</b>\n</code></pre>", render(t, "```\n<b>raw</b>\n```\n"))
}

func TestTranslateDeterministic(t *testing.T) {
	const in = "# t\n- a\n1. b\n```go\nc\n```\nd *e* f\n"
	first := render(t, in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, render(t, in))
	}
}

func TestTranslateEmptyHeadingContent(t *testing.T) {
	doc := ast.Document{&ast.Heading{Level: 2}}
	assert.Equal(t, "<h2></h2>", Translate(doc))
}
