package editor

import (
	"github.com/dshills/ayed/internal/engine/cursor"
	"github.com/dshills/ayed/internal/input/mode"
)

// deleteBackwards removes the codepoint before the cursor.
func (e *Editor) deleteBackwards() {
	pos := e.pane.Cursor()
	if pos == 0 {
		return
	}
	start := cursor.PrevRune(e.Buffer(), pos)
	if e.remove(start, pos) {
		e.pane.SetCursor(start)
	}
}

// deleteForwards removes the codepoint under the cursor.
func (e *Editor) deleteForwards() {
	buf := e.Buffer()
	pos := e.pane.Cursor()
	if pos >= buf.Len() {
		return
	}
	if e.remove(pos, cursor.NextRune(buf, pos)) {
		e.pane.SetCursor(pos)
	}
}

// deleteLine removes the cursor's line into the registers. On the last
// line the newline before it goes instead, so no empty line is left.
func (e *Editor) deleteLine() {
	buf := e.Buffer()
	pos := e.pane.Cursor()
	begin := cursor.LineBegin(buf, pos)
	end := cursor.NextLineBegin(buf, pos)

	text := string(buf.Slice(begin, end))
	start := begin
	if cursor.LineEnd(buf, pos) == buf.Len() {
		text += "\n"
		if begin > 0 {
			start = begin - 1
		}
	}
	if start == end {
		return
	}

	e.registers.SetDelete(text, true)
	if e.remove(start, end) {
		e.pane.SetCursor(cursor.LineBegin(buf, start))
	}
}

// deleteWord removes from the cursor to the start of the next word,
// without crossing the end of the line.
func (e *Editor) deleteWord() {
	buf := e.Buffer()
	pos := e.pane.Cursor()
	end := min(cursor.NextWord(buf, pos), cursor.LineEnd(buf, pos))
	if end <= pos {
		return
	}

	e.registers.SetDelete(string(buf.Slice(pos, end)), false)
	if e.remove(pos, end) {
		e.pane.SetCursor(pos)
	}
}

// changeWord removes the rest of the word under the cursor and enters
// Insert mode.
func (e *Editor) changeWord() {
	buf := e.Buffer()
	pos := e.pane.Cursor()
	end := cursor.WordRunEnd(buf, pos)
	if end > pos {
		e.registers.SetDelete(string(buf.Slice(pos, end)), false)
		if e.remove(pos, end) {
			e.pane.SetCursor(pos)
		}
	}
	e.SetMode(mode.Insert)
}
