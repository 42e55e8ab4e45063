package editor

import (
	"unicode/utf8"
)

// insertChar inserts r at the cursor. A closing brace typed as the first
// non-blank on its line is dedented to match its opening brace.
func (e *Editor) insertChar(r rune) {
	if r == 0 || (r < ' ' && r != '\t') || r == utf8.RuneError {
		return
	}
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], r)

	end, ok := e.insert(e.pane.Cursor(), string(b[:n]))
	if !ok {
		return
	}
	e.pane.SetCursor(end)

	if r == '}' && e.autoIndent {
		e.dedentBrace()
	}
}

// insertNewLine splits the line at the cursor.
func (e *Editor) insertNewLine() {
	e.insertLine(e.pane.Cursor())
}

func (e *Editor) insertTab() {
	if end, ok := e.insert(e.pane.Cursor(), "\t"); ok {
		e.pane.SetCursor(end)
	}
}

// insertLine inserts a newline at pos, followed by the indentation the new
// line should start with, and leaves the cursor after it.
func (e *Editor) insertLine(pos int) {
	s := "\n"
	if e.autoIndent {
		s += e.indentAfter(pos)
	}
	if end, ok := e.insert(pos, s); ok {
		e.pane.SetCursor(end)
	}
}
