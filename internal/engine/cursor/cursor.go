package cursor

import (
	"github.com/dshills/ayed/internal/engine/buffer"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// DefaultTabWidth is the column width of a tab used by indentation motions.
const DefaultTabWidth = 3

// Text is the read-only view motions operate on. *buffer.GapBuffer
// satisfies it.
type Text interface {
	Len() int
	At(i int) byte
}

// byteAt returns the byte at i, or 0 when i is outside the text.
func byteAt(t Text, i ByteOffset) byte {
	if i < 0 || i >= t.Len() {
		return 0
	}
	return t.At(i)
}

// Clamp limits pos to [0, t.Len()].
func Clamp(t Text, pos ByteOffset) ByteOffset {
	return max(0, min(pos, t.Len()))
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

// Back moves one byte towards the start.
func Back(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	if pos > 0 {
		pos--
	}
	return pos
}

// Next moves one byte towards the end.
func Next(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	if pos < t.Len() {
		pos++
	}
	return pos
}

// RuneStart returns the offset of the codepoint containing pos.
func RuneStart(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	for i := 0; i < 3 && pos > 0 && isContinuation(byteAt(t, pos)); i++ {
		pos--
	}
	return pos
}

// PrevRune returns the start of the codepoint before pos.
func PrevRune(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	if pos == 0 {
		return 0
	}
	return RuneStart(t, pos-1)
}

// NextRune returns the offset just past the codepoint at pos.
func NextRune(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	if pos >= t.Len() {
		return pos
	}
	return min(pos+buffer.UTF8Len(byteAt(t, pos)), t.Len())
}

// BackNormal moves one codepoint back without leaving the current line.
func BackNormal(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	prev := PrevRune(t, pos)
	if prev == pos || byteAt(t, prev) == '\n' {
		return pos
	}
	return prev
}

// NextNormal moves one codepoint forward without landing on the line
// terminator or past the last character.
func NextNormal(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	if byteAt(t, pos) == '\n' {
		return pos
	}
	next := NextRune(t, pos)
	if next >= t.Len() || byteAt(t, next) == '\n' {
		return pos
	}
	return next
}
