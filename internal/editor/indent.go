package editor

import (
	"strings"

	"github.com/dshills/ayed/internal/engine/cursor"
)

// indentAfter returns the indentation for a line opened at pos: the
// leading whitespace of pos's line, plus one tab when the last non-blank
// byte before pos on that line is '{'.
func (e *Editor) indentAfter(pos int) string {
	buf := e.Buffer()
	begin := cursor.LineBegin(buf, pos)
	wsEnd := min(cursor.LeadingWhitespace(buf, pos), pos)
	indent := string(buf.Slice(begin, wsEnd))

	if nb := cursor.PrevNonBlank(buf, pos); nb >= begin && buf.At(nb) == '{' {
		indent += "\t"
	}
	return indent
}

// dedentBrace runs right after '}' was inserted before the cursor. When the
// brace is the first non-blank on its line and the line is indented deeper
// than the line holding the matching '{', the excess whitespace is removed.
func (e *Editor) dedentBrace() {
	buf := e.Buffer()
	pos := e.pane.Cursor()
	tw := e.pane.TabWidth()

	begin := cursor.LineBegin(buf, pos)
	wsEnd := cursor.LeadingWhitespace(buf, pos)
	if wsEnd != pos-1 || wsEnd == begin {
		return
	}

	target := cursor.BraceMatchingIndentation(buf, pos, tw)
	if cursor.LineIndent(buf, pos, tw) <= target {
		return
	}

	// Drop whole whitespace bytes from the front while the rest is still
	// too wide. If that lands exactly on target a single delete suffices.
	ws := buf.Slice(begin, wsEnd)
	cut := 0
	for cut < len(ws) && indentWidth(ws[cut:], tw) > target {
		cut++
	}
	if indentWidth(ws[cut:], tw) == target {
		if e.remove(begin, begin+cut) {
			e.pane.SetCursor(pos - cut)
		}
		return
	}

	indent := indentString(target, tw, strings.IndexByte(string(ws), '\t') >= 0)
	if !e.remove(begin, wsEnd) {
		return
	}
	end, _ := e.insert(begin, indent)
	e.pane.SetCursor(end + 1)
}

// indentWidth measures leading whitespace the way cursor.LineIndent does.
func indentWidth(ws []byte, tabWidth int) int {
	w := 0
	for _, c := range ws {
		if c == '\t' {
			w += tabWidth
		} else {
			w++
		}
	}
	return w
}

// indentString builds whitespace of the given width.
func indentString(width, tabWidth int, tabs bool) string {
	if !tabs || tabWidth <= 0 {
		return strings.Repeat(" ", width)
	}
	return strings.Repeat("\t", width/tabWidth) + strings.Repeat(" ", width%tabWidth)
}
