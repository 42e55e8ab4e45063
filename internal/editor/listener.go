package editor

import (
	"errors"

	"github.com/dshills/ayed/internal/engine/buffer"
)

// EditListener is notified once for every buffer mutation, typically by a
// syntax highlighter that re-parses the touched range.
type EditListener interface {
	OnEdit(e buffer.Edit)
}

// EditListenerFunc adapts a function to EditListener.
type EditListenerFunc func(e buffer.Edit)

// OnEdit calls f(e).
func (f EditListenerFunc) OnEdit(e buffer.Edit) {
	f(e)
}

// insert writes s at pos and reports the edit. It returns the offset after
// the inserted text, or pos and false when the buffer is full.
func (e *Editor) insert(pos int, s string) (int, bool) {
	if s == "" {
		return pos, true
	}
	end, err := e.Buffer().InsertString(s, pos)
	if err != nil {
		e.absorb("insert", err)
		return pos, false
	}
	e.emit(buffer.NewInsert(pos, len(s)))
	return end, true
}

// remove deletes [start, end) and reports the edit.
func (e *Editor) remove(start, end int) bool {
	if start >= end {
		return false
	}
	if err := e.Buffer().Delete(start, end); err != nil {
		e.absorb("delete", err)
		return false
	}
	e.emit(buffer.NewDelete(start, end))
	return true
}

func (e *Editor) emit(ed buffer.Edit) {
	e.pane.ApplyEdit(ed)
	e.metrics.RecordEdit()
	for _, l := range e.listeners {
		l.OnEdit(ed)
	}
}

// absorb logs a failed buffer operation. Failed operations leave the
// buffer untouched, so the action simply stops.
func (e *Editor) absorb(op string, err error) {
	e.metrics.RecordError()
	e.lastErr = err
	if errors.Is(err, buffer.ErrCapacityExceeded) {
		e.logger.WithField("op", op).Warn("buffer full: %v", err)
		return
	}
	e.logger.WithField("op", op).ErrorErr("buffer operation failed", err)
}
