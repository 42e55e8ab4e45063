package editor

import (
	"strings"

	"github.com/dshills/ayed/internal/engine/cursor"
)

// yankLine copies the cursor's line, newline included, into the registers.
func (e *Editor) yankLine() {
	buf := e.Buffer()
	pos := e.pane.Cursor()
	text := string(buf.Slice(cursor.LineBegin(buf, pos), cursor.NextLineBegin(buf, pos)))
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	e.registers.SetYank(text, true)
}

// paste inserts the unnamed register. Linewise text goes below the cursor's
// line with the cursor at its start; other text goes after the cursor with
// the cursor on its last character.
func (e *Editor) paste() {
	reg := e.registers.Unnamed()
	if reg.IsEmpty() {
		return
	}
	buf := e.Buffer()
	pos := e.pane.Cursor()

	if reg.Linewise {
		at := cursor.NextLineBegin(buf, pos)
		text := reg.Content
		if cursor.LineEnd(buf, pos) == buf.Len() {
			// last line has no terminator to paste behind
			at = buf.Len()
			text = "\n" + strings.TrimSuffix(text, "\n")
		}
		if _, ok := e.insert(at, text); ok {
			if text[0] == '\n' {
				at++
			}
			e.pane.SetCursor(at)
		}
		return
	}

	at := pos
	if pos < buf.Len() && buf.At(pos) != '\n' {
		at = cursor.NextRune(buf, pos)
	}
	if end, ok := e.insert(at, reg.Content); ok {
		e.pane.SetCursor(cursor.RuneStart(buf, end-1))
	}
}
