package rubytext

import "strings"

// Interlinear annotation characters, the Unicode markers used by
// InterlinearEncoding to delimit an annotated run inside otherwise plain
// text. Consumers that understand the interlinear convention (Unicode
// chapter 23.8) interpret them independently; this package only emits
// them, it never parses them.
const (
	// AnnotationAnchor (U+FFF9) precedes the base text of an annotated run.
	AnnotationAnchor rune = '\uFFF9'
	// AnnotationSeparator (U+FFFA) separates the base text from its gloss.
	AnnotationSeparator rune = '\uFFFA'
	// AnnotationTerminator (U+FFFB) closes an annotated run.
	AnnotationTerminator rune = '\uFFFB'
)

// SegmentKind represents the kind of a Segment.
type SegmentKind int

const (
	// SegmentPlain is text with no gloss attached.
	SegmentPlain SegmentKind = iota
	// SegmentRubied is text with exactly one gloss attached to its entirety.
	SegmentRubied
)

func (sk SegmentKind) String() string {
	switch sk {
	case SegmentPlain:
		return "Plain"
	case SegmentRubied:
		return "Rubied"
	default:
		return "Unknown"
	}
}

// Segment is one maximal contiguous piece of a RubyString that either has
// no gloss or exactly one gloss attached to it. Segments appear when
// iterating a RubyString with Segments, and as the input to PushSegment,
// Extend, and FromSegments.
//
// A Segment is a self-contained value: its strings are copies, so it stays
// valid however the originating RubyString is mutated afterwards. Code
// consuming segments should switch exhaustively on Kind; there are exactly
// two kinds and no third is anticipated.
type Segment struct {
	Kind SegmentKind
	Text string
	// Ruby is the gloss. It is empty unless Kind is SegmentRubied.
	Ruby string
}

// Plain returns a Segment carrying text with no gloss.
func Plain(text string) Segment {
	return Segment{Kind: SegmentPlain, Text: text}
}

// Rubied returns a Segment carrying text with the gloss ruby attached to
// its entirety.
func Rubied(text, ruby string) Segment {
	return Segment{Kind: SegmentRubied, Text: text, Ruby: ruby}
}

// PlainText returns only the base text of the segment, ignoring any gloss.
func (s Segment) PlainText() string {
	return s.Text
}

// InterlinearEncoding returns the segment encoded as plain text using the
// interlinear annotation characters. Plain segments are returned verbatim.
//
//	rubytext.Plain("です").InterlinearEncoding()          // "です"
//	rubytext.Rubied("東京", "とうきょう").InterlinearEncoding() // "￹東京￺とうきょう￻"
func (s Segment) InterlinearEncoding() string {
	if s.Kind == SegmentPlain {
		return s.Text
	}
	var b strings.Builder
	s.appendInterlinear(&b)
	return b.String()
}

func (s Segment) appendInterlinear(b *strings.Builder) {
	switch s.Kind {
	case SegmentPlain:
		b.WriteString(s.Text)
	case SegmentRubied:
		b.WriteRune(AnnotationAnchor)
		b.WriteString(s.Text)
		b.WriteRune(AnnotationSeparator)
		b.WriteString(s.Ruby)
		b.WriteRune(AnnotationTerminator)
	}
}
