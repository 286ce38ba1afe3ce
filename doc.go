// Package rubytext provides a string type that can have ruby glosses
// (short annotations, most commonly phonetic readings) attached to parts
// of it, as used in East Asian typography.
//
// Basic usage:
//
//	rs := rubytext.New()
//	rs.PushString("ここは")
//	rs.PushSegment(rubytext.Rubied("東", "とう"))
//	rs.PushSegment(rubytext.Rubied("京", "きょう"))
//	rs.PushString("です")
//
//	rs.PlainText()            // "ここは東京です"
//	rs.InterlinearEncoding()  // "ここは￹東￺とう￻￹京￺きょう￻です"
//
// Iterating the annotated and plain runs:
//
//	for it := rs.Segments(); ; {
//	    seg, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    // seg.Kind is SegmentPlain or SegmentRubied
//	}
//
// # Memory Layout
//
// The content is stored in two packed buffers, one holding the base text
// and one holding the concatenation of all glosses, plus a list of byte
// offsets recording which base-text span each gloss belongs to. Compared
// to holding each annotated substring as a separate string, this layout
// reduces memory usage and the number of separate allocations at the
// expense of slightly more involved indexing.
//
// The offset list stays ordered and non-overlapping because a RubyString
// only ever grows by appending; there is no insertion, removal, or
// in-place editing.
//
// # Concurrency
//
// A RubyString is a plain mutable value. Any number of goroutines may
// iterate it concurrently as long as none of them calls PushString,
// PushSegment, or Extend at the same time: multiple readers or one
// writer, never both.
package rubytext
