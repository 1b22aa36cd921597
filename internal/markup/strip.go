// Package markup removes HTML/XML markup from document text.
package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip removes all markup tags from text, decodes entities, collapses
// whitespace runs to single spaces, and trims. Malformed or unbalanced markup
// is handled best-effort; Strip never fails. Idempotent on its own output
// except when entity decoding mints fresh markup (&lt;p&gt; decodes to <p>,
// which a second pass would strip).
func Strip(text string) string {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		// html.Parse only fails on reader errors, which strings.Reader
		// never produces. Fall back to collapsing the raw input.
		return collapseWhitespace(text)
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			// Skip non-content tags
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return collapseWhitespace(buf.String())
}

// collapseWhitespace reduces any whitespace run (including newlines) to a
// single space and trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
