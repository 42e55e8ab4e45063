package cursor

// Class is the character class used by word motions. Punctuation bytes
// are each their own class, so the byte value doubles as the class.
type Class int

const (
	ClassSpace Class = 0
	ClassWord  Class = 1
)

// ClassOf returns the class of c. The zero byte, returned for offsets past
// the text, counts as whitespace. Bytes of multi-byte codepoints count as
// word characters.
func ClassOf(c byte) Class {
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == 0:
		return ClassSpace
	case c == '_' || c >= 0x80,
		c >= '0' && c <= '9',
		c >= 'a' && c <= 'z',
		c >= 'A' && c <= 'Z':
		return ClassWord
	default:
		return Class(c)
	}
}

// IsWhitespace reports whether c is a space, tab, or newline.
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

func classAt(t Text, pos ByteOffset) Class {
	return ClassOf(byteAt(t, pos))
}

// SkipWhitespace returns the first offset at or after pos that is not
// whitespace, or Len().
func SkipWhitespace(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	for pos < t.Len() && IsWhitespace(byteAt(t, pos)) {
		pos++
	}
	return pos
}

// SkipWhitespaceReverse returns the last offset at or before pos that is not
// whitespace, or 0.
func SkipWhitespaceReverse(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	for pos > 0 && (pos == t.Len() || IsWhitespace(byteAt(t, pos))) {
		pos--
	}
	return pos
}

// NextWord returns the start of the next word (vi "w").
func NextWord(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	if cls := classAt(t, pos); cls != ClassSpace {
		for pos < t.Len() && classAt(t, pos) == cls {
			pos++
		}
	}
	return SkipWhitespace(t, pos)
}

// EndOfWord returns the last byte of the current or next word (vi "e").
// When no word follows, pos is returned unchanged.
func EndOfWord(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	p := SkipWhitespace(t, Next(t, pos))
	if p >= t.Len() {
		return pos
	}
	cls := classAt(t, p)
	for p+1 < t.Len() && classAt(t, p+1) == cls {
		p++
	}
	return p
}

// PrevWord returns the start of the current or previous word (vi "b").
func PrevWord(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	if pos == 0 {
		return 0
	}
	p := pos - 1
	for p > 0 && classAt(t, p) == ClassSpace {
		p--
	}
	cls := classAt(t, p)
	if cls == ClassSpace {
		return p
	}
	for p > 0 && classAt(t, p-1) == cls {
		p--
	}
	return p
}

// WordRunEnd returns the offset just past the run of same-class bytes
// starting at pos. Whitespace runs stop before a newline.
func WordRunEnd(t Text, pos ByteOffset) ByteOffset {
	pos = Clamp(t, pos)
	if pos >= t.Len() || byteAt(t, pos) == '\n' {
		return pos
	}
	cls := classAt(t, pos)
	for pos < t.Len() && classAt(t, pos) == cls && byteAt(t, pos) != '\n' {
		pos++
	}
	return pos
}

// ParagraphUp returns the nearest blank line before pos, or 0.
func ParagraphUp(t Text, pos ByteOffset) ByteOffset {
	pos = Back(t, pos)
	for pos > 0 {
		if byteAt(t, pos) == '\n' && byteAt(t, pos-1) == '\n' {
			return pos
		}
		pos--
	}
	return 0
}

// ParagraphDown returns the nearest blank line after pos, or Len().
func ParagraphDown(t Text, pos ByteOffset) ByteOffset {
	pos = Next(t, pos)
	for pos+1 < t.Len() {
		if byteAt(t, pos) == '\n' && byteAt(t, pos+1) == '\n' {
			return pos + 1
		}
		pos++
	}
	return t.Len()
}
