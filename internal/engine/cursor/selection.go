package cursor

import (
	"fmt"
)

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// Selection is an immutable value type.
type Selection struct {
	Anchor ByteOffset // Where selection started
	Head   ByteOffset // Current cursor position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head ByteOffset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// CharSelection returns the characterwise visual selection between anchor
// and head. Both ends are inclusive, so the codepoint under the later end
// is covered.
func CharSelection(t Text, anchor, head ByteOffset) Selection {
	lo, hi := min(anchor, head), max(anchor, head)
	return Selection{Anchor: Clamp(t, lo), Head: NextRune(t, hi)}
}

// LineSelection returns the linewise visual selection covering every line
// touched by anchor and head, terminators included.
func LineSelection(t Text, anchor, head ByteOffset) Selection {
	lo, hi := min(anchor, head), max(anchor, head)
	return Selection{Anchor: LineBegin(t, lo), Head: NextLineBegin(t, hi)}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the length of the selection in bytes.
func (s Selection) Len() ByteOffset {
	return s.End() - s.Start()
}

// Start returns the lower bound of the selection.
func (s Selection) Start() ByteOffset {
	return min(s.Anchor, s.Head)
}

// End returns the upper bound of the selection.
func (s Selection) End() ByteOffset {
	return max(s.Anchor, s.Head)
}

// Contains returns true if offset is within [Start, End).
func (s Selection) Contains(offset ByteOffset) bool {
	return offset >= s.Start() && offset < s.End()
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	dir := "→"
	if s.Head < s.Anchor {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Anchor, dir, s.Head)
}
