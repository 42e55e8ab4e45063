package cursor

// LineIndent returns the display width of the leading whitespace on pos's
// line. Tabs count tabWidth columns, spaces one.
func LineIndent(t Text, pos ByteOffset, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	width := 0
	for i := LineBegin(t, pos); i < t.Len(); i++ {
		switch byteAt(t, i) {
		case '\t':
			width += tabWidth
		case ' ':
			width++
		default:
			return width
		}
	}
	return width
}

// LeadingWhitespace returns the end of the leading whitespace on pos's line.
func LeadingWhitespace(t Text, pos ByteOffset) ByteOffset {
	i := LineBegin(t, pos)
	for i < t.Len() {
		if c := byteAt(t, i); c != ' ' && c != '\t' {
			break
		}
		i++
	}
	return i
}

// BraceMatchingIndentation returns the indentation of the line holding the
// '{' that matches a '}' typed just before pos. The scan starts two bytes
// before pos, past the '}' itself. It returns 0 when no brace matches.
func BraceMatchingIndentation(t Text, pos ByteOffset, tabWidth int) int {
	pos = Clamp(t, pos)
	depth := 1
	for i := pos - 2; i >= 0; i-- {
		switch byteAt(t, i) {
		case '}':
			depth++
		case '{':
			depth--
			if depth == 0 {
				return LineIndent(t, i, tabWidth)
			}
		}
	}
	return 0
}

// PrevNonBlank returns the offset of the last non-whitespace byte before
// pos, or -1 when there is none.
func PrevNonBlank(t Text, pos ByteOffset) ByteOffset {
	for i := Clamp(t, pos) - 1; i >= 0; i-- {
		if !IsWhitespace(byteAt(t, i)) {
			return i
		}
	}
	return -1
}
