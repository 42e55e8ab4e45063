package cursor

// LineBegin returns the offset just after the newline that precedes pos,
// or 0 on the first line.
func LineBegin(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	for pos > 0 {
		if byteAt(t, pos-1) == '\n' {
			return pos
		}
		pos--
	}
	return 0
}

// LineEnd returns the offset of the newline that terminates pos's line,
// or Len() on the last line.
func LineEnd(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	for pos < t.Len() {
		if byteAt(t, pos) == '\n' {
			return pos
		}
		pos++
	}
	return t.Len()
}

// NextLineBegin returns the start of the following line. On the last line
// it returns Len().
func NextLineBegin(t Text, pos ByteOffset) ByteOffset {
	return Next(t, LineEnd(t, pos))
}

// PrevLineBegin returns the start of the preceding line. On the first line
// it returns 0.
func PrevLineBegin(t Text, pos ByteOffset) ByteOffset {
	return LineBegin(t, Back(t, LineBegin(t, pos)))
}

// NextLineEnd returns the end of the following line.
func NextLineEnd(t Text, pos ByteOffset) ByteOffset {
	return LineEnd(t, NextLineBegin(t, pos))
}

// PrevLineEnd returns the end of the preceding line. On the first line it
// returns 0.
func PrevLineEnd(t Text, pos ByteOffset) ByteOffset {
	return Back(t, LineBegin(t, pos))
}

// Column returns the byte distance from the start of pos's line.
func Column(t Text, pos ByteOffset) int {
	pos = Clamp(t, pos)
	return pos - LineBegin(t, pos)
}

// LineLength returns the number of bytes on pos's line, excluding the
// terminator.
func LineLength(t Text, pos ByteOffset) int {
	return LineEnd(t, pos) - LineBegin(t, pos)
}

// LineNumber returns the zero-based line containing pos.
func LineNumber(t Text, pos ByteOffset) int {
	pos = Clamp(t, pos)
	n := 0
	for i := 0; i < pos; i++ {
		if byteAt(t, i) == '\n' {
			n++
		}
	}
	return n
}

// LineCount returns the number of lines. An empty text has one line, and a
// trailing newline opens a final empty line.
func LineCount(t Text) int {
	return LineNumber(t, t.Len()) + 1
}

// LineOffset returns the start of the zero-based line n, clamped to the
// last line.
func LineOffset(t Text, n int) ByteOffset {
	pos := 0
	for ; n > 0; n-- {
		end := LineEnd(t, pos)
		if end >= t.Len() {
			break
		}
		pos = end + 1
	}
	return pos
}
