package editor

import (
	"github.com/dshills/ayed/internal/engine/cursor"
	"github.com/dshills/ayed/internal/input/mode"
	"github.com/dshills/ayed/internal/input/vim"
)

// normalHandle feeds the last key into the pending sequence and runs the
// command once the sequence resolves. Unknown sequences are dropped.
func (e *Editor) normalHandle() {
	if !e.pending.PushEvent(e.last) {
		return
	}

	a, status := vim.Resolve(e.pending.Bytes())
	switch status {
	case vim.StatusComplete:
		e.pending.Clear()
		e.run(a)
	case vim.StatusInvalid:
		e.logger.Debug("dropped pending keys %q", e.pending.String())
		e.pending.Clear()
	}
}

// insertModeNext enters Insert mode after the character under the cursor.
func (e *Editor) insertModeNext() {
	buf := e.Buffer()
	pos := e.pane.Cursor()
	if pos < buf.Len() && buf.At(pos) != '\n' {
		e.pane.SetCursor(cursor.NextRune(buf, pos))
	}
	e.SetMode(mode.Insert)
}

func (e *Editor) insertBeginningOfLine() {
	e.gotoLineBegin()
	e.SetMode(mode.Insert)
}

func (e *Editor) insertEndOfLine() {
	e.gotoLineEnd()
	e.SetMode(mode.Insert)
}

// newLineAfter opens a line below the cursor's line.
func (e *Editor) newLineAfter() {
	e.insertLine(cursor.LineEnd(e.Buffer(), e.pane.Cursor()))
	e.SetMode(mode.Insert)
}

// newLineBefore opens a line above the cursor's line.
func (e *Editor) newLineBefore() {
	buf := e.Buffer()
	begin := cursor.LineBegin(buf, e.pane.Cursor())
	if begin > 0 {
		e.insertLine(begin - 1)
		e.SetMode(mode.Insert)
		return
	}

	// first line: the new line goes in front and keeps this line's indent
	indent := ""
	if e.autoIndent {
		indent = string(buf.Slice(0, cursor.LeadingWhitespace(buf, 0)))
	}
	if _, ok := e.insert(0, indent+"\n"); ok {
		e.pane.SetCursor(len(indent))
	}
	e.SetMode(mode.Insert)
}
