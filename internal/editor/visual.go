package editor

import (
	"github.com/dshills/ayed/internal/input/mode"
)

// visualMode starts a selection anchored at the cursor. Switching between
// the two visual modes keeps the anchor.
func (e *Editor) visualMode(m mode.Mode) {
	if !e.Mode().IsVisual() {
		e.pane.SetVisual(e.pane.Cursor())
	}
	e.SetMode(m)
}

// visualDelete deletes the selection into the registers and returns to
// Normal mode.
func (e *Editor) visualDelete() {
	linewise := e.Mode() == mode.VisualLine
	sel := e.pane.Selection(linewise)
	if !sel.IsEmpty() {
		text := string(e.Buffer().Slice(sel.Start(), sel.End()))
		if linewise && (text == "" || text[len(text)-1] != '\n') {
			text += "\n"
		}
		e.registers.SetDelete(text, linewise)
		if e.remove(sel.Start(), sel.End()) {
			e.pane.SetCursor(sel.Start())
		}
	}
	e.SetMode(mode.Normal)
}

// visualYank copies the selection and returns to Normal mode with the
// cursor at the start of the selection.
func (e *Editor) visualYank() {
	linewise := e.Mode() == mode.VisualLine
	sel := e.pane.Selection(linewise)
	if !sel.IsEmpty() {
		text := string(e.Buffer().Slice(sel.Start(), sel.End()))
		if linewise && text[len(text)-1] != '\n' {
			text += "\n"
		}
		e.registers.SetYank(text, linewise)
		e.pane.SetCursor(sel.Start())
	}
	e.SetMode(mode.Normal)
}
