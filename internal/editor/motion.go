package editor

import (
	"github.com/dshills/ayed/internal/engine/cursor"
)

func (e *Editor) gotoLineBegin() {
	e.pane.SetCursor(cursor.LineBegin(e.Buffer(), e.pane.Cursor()))
}

func (e *Editor) gotoLineEnd() {
	e.pane.SetCursor(cursor.LineEnd(e.Buffer(), e.pane.Cursor()))
}

// pageUp moves up by one screen less a line of overlap.
func (e *Editor) pageUp() {
	for i := 0; i < max(e.pane.Rows()-1, 1); i++ {
		e.pane.CursorUp()
	}
}

// pageDown moves down by one screen less a line of overlap.
func (e *Editor) pageDown() {
	for i := 0; i < max(e.pane.Rows()-1, 1); i++ {
		e.pane.CursorDown()
	}
}

// normalCursorBack moves left without leaving the line.
func (e *Editor) normalCursorBack() {
	e.pane.SetCursor(cursor.BackNormal(e.Buffer(), e.pane.Cursor()))
}

// normalCursorNext moves right without landing on the line terminator.
func (e *Editor) normalCursorNext() {
	e.pane.SetCursor(cursor.NextNormal(e.Buffer(), e.pane.Cursor()))
}

func (e *Editor) goWordNext() {
	e.pane.SetCursor(cursor.NextWord(e.Buffer(), e.pane.Cursor()))
}

func (e *Editor) goWordEnd() {
	e.pane.SetCursor(cursor.EndOfWord(e.Buffer(), e.pane.Cursor()))
}

func (e *Editor) goWordPrev() {
	e.pane.SetCursor(cursor.PrevWord(e.Buffer(), e.pane.Cursor()))
}

func (e *Editor) skipParagraphUp() {
	e.pane.SetCursor(cursor.ParagraphUp(e.Buffer(), e.pane.Cursor()))
}

func (e *Editor) skipParagraphDown() {
	e.pane.SetCursor(cursor.ParagraphDown(e.Buffer(), e.pane.Cursor()))
}
