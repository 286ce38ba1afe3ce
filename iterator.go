package rubytext

// SegmentIterator walks the segments of a RubyString in order, lazily
// reconstructing the alternation of plain and rubied runs from the packed
// buffers. It is created by the Segments method on RubyString.
//
// The iterator holds a read-only reference to the RubyString plus two
// cursors; it allocates nothing per step beyond the returned segment's
// strings, never backtracks, and may be abandoned mid-sequence without
// cleanup.
type SegmentIterator struct {
	rs *RubyString
	// nextTextStart is the byte offset of the start of the next segment.
	nextTextStart int
	// nextPlacementIdx is the index of the placement starting at
	// nextTextStart, or the closest one after it.
	nextPlacementIdx int
}

// Next returns the next segment and true, or the zero Segment and false
// once the sequence is exhausted.
func (it *SegmentIterator) Next() (Segment, bool) {
	rs := it.rs
	if it.nextTextStart >= len(rs.text) {
		// nothing left at all in the RubyString
		return Segment{}, false
	}
	if it.nextPlacementIdx >= len(rs.placements) {
		// only unrubied text left
		text := string(rs.text[it.nextTextStart:])
		it.nextTextStart = len(rs.text)
		return Plain(text), true
	}
	p := rs.placements[it.nextPlacementIdx]
	if it.nextTextStart < p.textStart {
		// plain text up to the next rubied run
		text := string(rs.text[it.nextTextStart:p.textStart])
		it.nextTextStart = p.textStart
		return Plain(text), true
	}
	text := string(rs.text[p.textStart:p.textEnd])
	ruby := string(rs.ruby[p.rubyStart:p.rubyEnd])
	it.nextTextStart = p.textEnd
	it.nextPlacementIdx++
	return Rubied(text, ruby), true
}
