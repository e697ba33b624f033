package ast

import (
	"fmt"
	"strings"
)

// No escaping is applied to user text anywhere in this package; the input
// dialect owns its markup and the output is emitted as written.

// Text

func (t Text) HTML() string {
	var out strings.Builder
	for _, x := range t {
		out.WriteString(x.HTML())
	}
	return out.String()
}

// Plaintext

func (p *Plaintext) HTML() string { return p.Text }

// Bold

func (b *Bold) HTML() string {
	return fmt.Sprintf("<strong>%s</strong>", b.Text)
}

// Italic

func (i *Italic) HTML() string {
	return fmt.Sprintf("<em>%s</em>", i.Text)
}

// Strike

func (s *Strike) HTML() string {
	return fmt.Sprintf("<del>%s</del>", s.Text)
}

// InlineCode

func (c *InlineCode) HTML() string {
	return fmt.Sprintf("<code>%s</code>", c.Code)
}

// Link

func (a *Link) HTML() string {
	return fmt.Sprintf("<a href=%q>%s</a>", a.URL, a.Label)
}

// Image

func (img *Image) HTML() string {
	return fmt.Sprintf("<img src=%q alt=%q/>", img.URL, img.Alt)
}

// Heading

func (h *Heading) HTML() string {
	return fmt.Sprintf("<h%d>%s</h%d>", h.Level, h.Content.HTML(), h.Level)
}

// UnorderedList

func (ul *UnorderedList) HTML() string {
	var out strings.Builder
	out.WriteString("<ul>")
	for _, x := range ul.Items {
		fmt.Fprintf(&out, "<li>%s</li>", x.HTML())
	}
	out.WriteString("</ul>")
	return out.String()
}

// OrderedList

func (ol *OrderedList) HTML() string {
	var out strings.Builder
	out.WriteString("<ol>")
	for _, x := range ol.Items {
		fmt.Fprintf(&out, "<li>%s</li>", x.HTML())
	}
	out.WriteString("</ol>")
	return out.String()
}

// Line

func (l *Line) HTML() string { return l.Content.HTML() }

// Codeblock

func (c *Codeblock) HTML() string {
	if c.Lang == "" {
		return fmt.Sprintf("<pre><code>%s</code></pre>", c.Body)
	}
	return fmt.Sprintf("<pre><code class=\"language-%s\">%s</code></pre>", c.Lang, c.Body)
}

// Rule

func (*Rule) HTML() string { return "<hr/>" }
