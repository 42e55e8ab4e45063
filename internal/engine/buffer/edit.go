package buffer

import "fmt"

// Edit describes the logical byte range touched by one mutation.
// PosBefore and PosAfter may come in either order; consumers normalize with
// Start and End.
type Edit struct {
	PosBefore ByteOffset
	PosAfter  ByteOffset
}

// NewInsert returns the Edit for n bytes inserted at pos.
func NewInsert(pos ByteOffset, n int) Edit {
	return Edit{PosBefore: pos, PosAfter: pos + n}
}

// NewDelete returns the Edit for the bytes in [start, end) being removed.
// The cursor ends at start, so PosAfter is start.
func NewDelete(start, end ByteOffset) Edit {
	return Edit{PosBefore: end, PosAfter: start}
}

// Start returns the lower bound of the edit.
func (e Edit) Start() ByteOffset {
	return min(e.PosBefore, e.PosAfter)
}

// End returns the upper bound of the edit.
func (e Edit) End() ByteOffset {
	return max(e.PosBefore, e.PosAfter)
}

// Len returns the number of bytes the edit spans.
func (e Edit) Len() int {
	return e.End() - e.Start()
}

// IsEmpty reports whether the edit spans no bytes.
func (e Edit) IsEmpty() bool {
	return e.PosBefore == e.PosAfter
}

// Kind classifies the edit by the direction of its bounds.
func (e Edit) Kind() ChangeType {
	switch {
	case e.PosAfter > e.PosBefore:
		return ChangeInsert
	case e.PosAfter < e.PosBefore:
		return ChangeDelete
	default:
		return ChangeNone
	}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	return fmt.Sprintf("%s[%d, %d)", e.Kind(), e.Start(), e.End())
}

// ChangeType categorizes the type of change made to the buffer.
type ChangeType uint8

const (
	ChangeNone   ChangeType = iota // Nothing changed
	ChangeInsert                   // Text was inserted
	ChangeDelete                   // Text was deleted
)

// String returns a string representation of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeNone:
		return "none"
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	default:
		return "unknown"
	}
}
