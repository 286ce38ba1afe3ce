package htmlruby

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/rubytext"
)

// Options holds configuration for Render.
type Options struct {
	// OmitFallback leaves out the <rp> fallback parentheses that browsers
	// without ruby support display around the gloss.
	OmitFallback bool

	// FallbackOpen and FallbackClose are the <rp> contents emitted before
	// and after each gloss. Empty strings mean the defaults "(" and ")".
	FallbackOpen  string
	FallbackClose string
}

// defaultOptions returns the default render options.
func defaultOptions() Options {
	return Options{
		FallbackOpen:  "(",
		FallbackClose: ")",
	}
}

// Render returns rs as HTML ruby markup. Plain segments are emitted as
// escaped text; each rubied segment becomes a <ruby> element with its
// gloss in <rt>, wrapped in <rp> fallback parentheses unless opts says
// otherwise. A nil opts uses the defaults.
func Render(rs *rubytext.RubyString, opts *Options) string {
	o := defaultOptions()
	if opts != nil {
		o = *opts
		if o.FallbackOpen == "" {
			o.FallbackOpen = "("
		}
		if o.FallbackClose == "" {
			o.FallbackClose = ")"
		}
	}

	var b strings.Builder
	for it := rs.Segments(); ; {
		seg, ok := it.Next()
		if !ok {
			break
		}
		switch seg.Kind {
		case rubytext.SegmentPlain:
			b.WriteString(html.EscapeString(seg.Text))
		case rubytext.SegmentRubied:
			b.WriteString("<ruby>")
			b.WriteString(html.EscapeString(seg.Text))
			if !o.OmitFallback {
				b.WriteString("<rp>")
				b.WriteString(html.EscapeString(o.FallbackOpen))
				b.WriteString("</rp>")
			}
			b.WriteString("<rt>")
			b.WriteString(html.EscapeString(seg.Ruby))
			b.WriteString("</rt>")
			if !o.OmitFallback {
				b.WriteString("<rp>")
				b.WriteString(html.EscapeString(o.FallbackClose))
				b.WriteString("</rp>")
			}
			b.WriteString("</ruby>")
		}
	}
	return b.String()
}
