// Package buffer provides the fixed-capacity gap buffer that stores the text
// of a pane.
//
// A GapBuffer views one contiguous, zero-initialized region handed to it at
// construction. The region is never grown or replaced: an insertion that
// would not fit returns ErrCapacityExceeded and leaves the content untouched.
//
// Layout:
//
//	region:  [ before gap | gap | after gap | unused slack ]
//	          0        gapStart gapEnd     Extent()       Cap()
//
// Logical offset i maps to physical index i when i < gapStart and to
// i + (gapEnd - gapStart) otherwise. Edits move the gap to the edit point, so
// a run of nearby edits (typing) costs O(1) amortized once the gap sits there.
//
// Basic usage:
//
//	buf := buffer.New(64 * 1024)
//	pos, err := buf.InsertString("Hello", 0)  // pos == 5
//	buf.InsertString(", World!", pos)
//	buf.DeleteChar(5)                          // "Hello World!"
//	text := buf.String()
//
// Indexed reads (At) panic with a *RangeError when the offset is outside the
// logical content, the same way slice indexing does. Deletions at or past the
// end are no-ops.
//
// Buffers are not safe for concurrent use. A buffer has exactly one writer,
// the editor that owns its pane.
package buffer
