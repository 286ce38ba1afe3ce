package layout

import (
	"unicode"

	"golang.org/x/text/width"

	"github.com/tsawler/rubytext"
)

// StringWidth returns the number of display cells s occupies: East Asian
// wide and fullwidth runes count two cells, combining marks and format
// controls count zero, everything else counts one.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += runeWidth(r)
	}
	return w
}

func runeWidth(r rune) int {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// SegmentWidth returns the number of cells a renderer must reserve for
// the segment: the base-text width for plain segments, and the wider of
// base text and gloss for rubied segments.
func SegmentWidth(seg rubytext.Segment) int {
	base := StringWidth(seg.Text)
	if seg.Kind != rubytext.SegmentRubied {
		return base
	}
	if gloss := StringWidth(seg.Ruby); gloss > base {
		return gloss
	}
	return base
}

// RubyOverhang returns how many cells the gloss protrudes past its base
// text, or 0 for plain segments and glosses that fit.
func RubyOverhang(seg rubytext.Segment) int {
	if seg.Kind != rubytext.SegmentRubied {
		return 0
	}
	if over := StringWidth(seg.Ruby) - StringWidth(seg.Text); over > 0 {
		return over
	}
	return 0
}

// LineWidth returns the total cells needed to render rs on one line,
// summing SegmentWidth over its segments.
func LineWidth(rs *rubytext.RubyString) int {
	total := 0
	for it := rs.Segments(); ; {
		seg, ok := it.Next()
		if !ok {
			return total
		}
		total += SegmentWidth(seg)
	}
}
