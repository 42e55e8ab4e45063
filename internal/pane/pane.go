// Package pane couples one gap buffer with a cursor, a sticky column for
// vertical motion, a visual-mode anchor, and the viewport bookkeeping a
// renderer needs.
package pane

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/ayed/internal/engine/buffer"
	"github.com/dshills/ayed/internal/engine/cursor"
)

// Pane is one editable view over a buffer.
//
// The cursor always satisfies 0 <= cursor <= buffer.Len(). Vertical motions
// remember the column they started from in sticky; every other motion
// resets it to -1.
type Pane struct {
	id  uuid.UUID
	buf *buffer.GapBuffer

	cursor int
	sticky int
	visual int

	scroll int
	cols   int
	rows   int

	tabWidth int
}

// Option configures a Pane.
type Option func(*Pane)

// WithTabWidth sets the tab stop width used for layout and indentation.
func WithTabWidth(n int) Option {
	return func(p *Pane) {
		if n > 0 {
			p.tabWidth = n
		}
	}
}

// WithID sets the pane identity instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(p *Pane) {
		p.id = id
	}
}

// New creates a pane showing buf in a cols x rows viewport.
// Dimensions below 1 are raised to 1.
func New(buf *buffer.GapBuffer, cols, rows int, opts ...Option) *Pane {
	p := &Pane{
		id:       uuid.New(),
		buf:      buf,
		sticky:   -1,
		cols:     max(cols, 1),
		rows:     max(rows, 1),
		tabWidth: cursor.DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the pane identity.
func (p *Pane) ID() uuid.UUID { return p.id }

// Buffer returns the underlying buffer.
func (p *Pane) Buffer() *buffer.GapBuffer { return p.buf }

// Cursor returns the cursor offset.
func (p *Pane) Cursor() int { return p.cursor }

// Sticky returns the remembered column, or -1 when unset.
func (p *Pane) Sticky() int { return p.sticky }

// Scroll returns the first visible line.
func (p *Pane) Scroll() int { return p.scroll }

// Cols returns the viewport width.
func (p *Pane) Cols() int { return p.cols }

// Rows returns the viewport height.
func (p *Pane) Rows() int { return p.rows }

// TabWidth returns the tab stop width.
func (p *Pane) TabWidth() int { return p.tabWidth }

// SetTabWidth changes the tab stop width. Non-positive widths are ignored.
func (p *Pane) SetTabWidth(n int) {
	if n > 0 {
		p.tabWidth = n
	}
}

// Resize changes the viewport size and re-clamps the scroll offset.
func (p *Pane) Resize(cols, rows int) {
	p.cols = max(cols, 1)
	p.rows = max(rows, 1)
	p.UpdateScroll()
}

// CursorLine returns the zero-based line of the cursor.
func (p *Pane) CursorLine() int {
	return cursor.LineNumber(p.buf, p.cursor)
}

// CursorColumn returns the byte column of the cursor.
func (p *Pane) CursorColumn() int {
	return cursor.Column(p.buf, p.cursor)
}

// SetCursor moves the cursor, clamped to the buffer, resets the sticky
// column, and updates the scroll offset.
func (p *Pane) SetCursor(pos int) {
	p.cursor = cursor.Clamp(p.buf, pos)
	p.sticky = -1
	p.UpdateScroll()
}

// CursorBack moves one byte back.
func (p *Pane) CursorBack() {
	p.SetCursor(cursor.Back(p.buf, p.cursor))
}

// CursorNext moves one byte forward.
func (p *Pane) CursorNext() {
	p.SetCursor(cursor.Next(p.buf, p.cursor))
}

// CursorLeft moves one codepoint back, crossing lines.
func (p *Pane) CursorLeft() {
	p.SetCursor(cursor.PrevRune(p.buf, p.cursor))
}

// CursorRight moves one codepoint forward, crossing lines.
func (p *Pane) CursorRight() {
	p.SetCursor(cursor.NextRune(p.buf, p.cursor))
}

// CursorUp moves to the previous line, keeping the sticky column.
// It does nothing on the first line.
func (p *Pane) CursorUp() {
	begin := cursor.LineBegin(p.buf, p.cursor)
	if begin == 0 {
		return
	}
	p.moveVertical(cursor.PrevLineBegin(p.buf, p.cursor))
}

// CursorDown moves to the next line, keeping the sticky column.
// It does nothing on the last line.
func (p *Pane) CursorDown() {
	if cursor.LineEnd(p.buf, p.cursor) >= p.buf.Len() {
		return
	}
	p.moveVertical(cursor.NextLineBegin(p.buf, p.cursor))
}

func (p *Pane) moveVertical(lineBegin int) {
	if p.sticky < 0 {
		p.sticky = cursor.Column(p.buf, p.cursor)
	}
	col := min(cursor.LineLength(p.buf, lineBegin), p.sticky)
	p.cursor = cursor.RuneStart(p.buf, lineBegin+col)
	p.UpdateScroll()
}

// UpdateScroll keeps the cursor line inside [scroll, scroll+rows) and never
// scrolls past the last screenful of content.
func (p *Pane) UpdateScroll() {
	line := p.CursorLine()
	if line < p.scroll {
		p.scroll = line
	} else if line >= p.scroll+p.rows {
		p.scroll = line - p.rows + 1
	}

	maxScroll := max(0, cursor.LineCount(p.buf)-p.rows)
	p.scroll = max(0, min(p.scroll, maxScroll))
}

// Visual returns the visual-mode anchor.
func (p *Pane) Visual() int { return p.visual }

// SetVisual sets the visual-mode anchor, clamped to the buffer.
func (p *Pane) SetVisual(pos int) {
	p.visual = cursor.Clamp(p.buf, pos)
}

// Selection returns the range between the visual anchor and the cursor,
// charwise or linewise.
func (p *Pane) Selection(linewise bool) cursor.Selection {
	if linewise {
		return cursor.LineSelection(p.buf, p.visual, p.cursor)
	}
	return cursor.CharSelection(p.buf, p.visual, p.cursor)
}

// ApplyEdit keeps the visual anchor in step with a buffer mutation. The
// cursor is positioned explicitly by whoever performed the edit.
func (p *Pane) ApplyEdit(e buffer.Edit) {
	p.visual = cursor.Clamp(p.buf, cursor.TransformOffset(p.visual, e))
	p.cursor = cursor.Clamp(p.buf, p.cursor)
}

// String returns a short description for logs.
func (p *Pane) String() string {
	return fmt.Sprintf("pane %s [%d:%d] %d bytes", p.id.String()[:8], p.CursorLine()+1, p.CursorColumn()+1, p.buf.Len())
}
