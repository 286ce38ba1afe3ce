package rubytext

import (
	"bytes"
	"strings"
)

// placement records where one annotated run sits in the packed buffers.
// All offsets are byte indices; textStart/textEnd index RubyString.text and
// rubyStart/rubyEnd index RubyString.ruby. Within a RubyString the
// placements are ordered by textStart and never overlap, which holds
// because the buffers only ever grow by appending.
type placement struct {
	textStart int
	textEnd   int
	rubyStart int
	rubyEnd   int
}

// RubyString is a string that can have ruby glosses attached to parts of
// it. See the package documentation for the memory layout and the
// reader/writer discipline.
//
// The zero value is an empty RubyString ready to use.
type RubyString struct {
	text       []byte
	ruby       []byte
	placements []placement
}

// New creates a new empty RubyString.
func New() *RubyString {
	return &RubyString{}
}

// FromString creates a RubyString holding s as plain text with no glosses.
func FromString(s string) *RubyString {
	return &RubyString{text: []byte(s)}
}

// FromSegments creates a RubyString from segments, appended in order.
func FromSegments(segs []Segment) *RubyString {
	rs := New()
	rs.Extend(segs)
	return rs
}

// PushString appends plain text, with no gloss attached, to the RubyString.
func (rs *RubyString) PushString(s string) {
	rs.text = append(rs.text, s...)
}

// PushSegment appends one segment to the RubyString. A plain segment
// behaves exactly like PushString; a rubied segment additionally attaches
// its gloss to the appended text.
//
// A rubied segment whose Text is empty and which is not followed by any
// further base text is never produced back by Segments; iteration stops at
// the end of the base text.
func (rs *RubyString) PushSegment(seg Segment) {
	switch seg.Kind {
	case SegmentPlain:
		rs.PushString(seg.Text)
	case SegmentRubied:
		textStart := len(rs.text)
		rubyStart := len(rs.ruby)
		rs.text = append(rs.text, seg.Text...)
		rs.ruby = append(rs.ruby, seg.Ruby...)
		rs.placements = append(rs.placements, placement{
			textStart: textStart,
			textEnd:   textStart + len(seg.Text),
			rubyStart: rubyStart,
			rubyEnd:   rubyStart + len(seg.Ruby),
		})
	}
}

// Extend appends segments in order, as if by repeated PushSegment calls.
func (rs *RubyString) Extend(segs []Segment) {
	for _, seg := range segs {
		rs.PushSegment(seg)
	}
}

// PlainText returns the text stored in the RubyString with all glosses
// dropped. The result is a fresh string.
func (rs *RubyString) PlainText() string {
	return string(rs.text)
}

// InterlinearEncoding returns the RubyString encoded as a plain string
// using the interlinear annotation characters: each annotated run is
// framed by AnnotationAnchor, AnnotationSeparator, and
// AnnotationTerminator, and plain runs appear verbatim.
func (rs *RubyString) InterlinearEncoding() string {
	var b strings.Builder
	// Each annotated run adds three 3-byte markers.
	b.Grow(len(rs.text) + len(rs.ruby) + 9*len(rs.placements))
	for it := rs.Segments(); ; {
		seg, ok := it.Next()
		if !ok {
			break
		}
		seg.appendInterlinear(&b)
	}
	return b.String()
}

// Segments returns an iterator over the segments of the RubyString. Every
// call returns a fresh, independent iterator starting at the beginning;
// iterating never modifies the RubyString.
func (rs *RubyString) Segments() *SegmentIterator {
	return &SegmentIterator{rs: rs}
}

// Len returns the length of the base text in bytes, glosses excluded.
func (rs *RubyString) Len() int {
	return len(rs.text)
}

// RubyCount returns the number of annotated runs.
func (rs *RubyString) RubyCount() int {
	return len(rs.placements)
}

// Equal reports whether two RubyStrings hold the same text with the same
// glosses attached to the same spans.
func (rs *RubyString) Equal(other *RubyString) bool {
	if rs == other {
		return true
	}
	if rs == nil || other == nil {
		return false
	}
	if !bytes.Equal(rs.text, other.text) || !bytes.Equal(rs.ruby, other.ruby) {
		return false
	}
	if len(rs.placements) != len(other.placements) {
		return false
	}
	for i := range rs.placements {
		if rs.placements[i] != other.placements[i] {
			return false
		}
	}
	return true
}
