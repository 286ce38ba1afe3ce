package htmlruby

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/rubytext"
)

// Parse reads HTML from r and collects its text content into a
// RubyString. Each <ruby> element contributes rubied segments pairing
// base-text runs with their <rt> glosses; <rp> fallback punctuation is
// dropped; all other text is appended as plain text, verbatim.
//
// The HTML parser is lenient, so fragments and malformed markup parse
// fine; an error is only possible when reading from r fails.
func Parse(r io.Reader) (*rubytext.RubyString, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	rs := rubytext.New()
	collectNode(doc, rs)
	return rs, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*rubytext.RubyString, error) {
	return Parse(strings.NewReader(s))
}

// collectNode walks the DOM, appending text to rs. Ruby elements are
// handed off to collectRuby; head, script, and style content is skipped.
func collectNode(n *html.Node, rs *rubytext.RubyString) {
	if n.Type == html.TextNode {
		rs.PushString(n.Data)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "ruby":
			collectRuby(n, rs)
			return
		case "head", "script", "style", "noscript", "template":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectNode(c, rs)
	}
}

// collectRuby flattens one <ruby> element. Base text accumulates until an
// <rt> is seen, which closes one rubied segment; HTML allows several such
// base/gloss pairs per element. Base text left over after the last <rt>
// has no gloss and is appended plain.
func collectRuby(n *html.Node, rs *rubytext.RubyString) {
	var base strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "rt":
				rs.PushSegment(rubytext.Rubied(base.String(), textContent(c)))
				base.Reset()
				continue
			case "rp", "rtc":
				continue
			}
		}
		base.WriteString(textContent(c))
	}
	if base.Len() > 0 {
		rs.PushString(base.String())
	}
}

// textContent returns the concatenated text of n's subtree, verbatim.
func textContent(n *html.Node) string {
	var b strings.Builder
	textContentRecursive(n, &b)
	return b.String()
}

func textContentRecursive(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContentRecursive(c, b)
	}
}
