// Package htmlruby converts between rubytext.RubyString and HTML ruby
// markup (the <ruby>, <rt>, and <rp> elements).
//
// Rendering:
//
//	rs := rubytext.FromSegments([]rubytext.Segment{
//	    rubytext.Plain("ここは"),
//	    rubytext.Rubied("東京", "とうきょう"),
//	})
//	htmlruby.Render(rs, nil)
//	// ここは<ruby>東京<rp>(</rp><rt>とうきょう</rt><rp>)</rp></ruby>
//
// Parsing is the reverse direction: Parse reads any HTML fragment or
// document and collects its text, turning each <ruby> element into rubied
// segments and everything else into plain text. Note that this parses HTML
// markup only; the interlinear annotation encoding produced by
// rubytext.RubyString.InterlinearEncoding is a one-way export and has no
// parser.
package htmlruby
