package pane

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/ayed/internal/engine/cursor"
)

// Cell is one laid-out codepoint of the visible window.
type Cell struct {
	Row   int // screen row, 0 is the first visible line
	Col   int // screen column after tab expansion
	Width int // columns occupied

	Offset int // logical byte offset, Len() for a trailing cursor cell
	Line   int // buffer line
	Column int // byte column within the line

	Rune     rune // '\t' for tabs, ' ' for cursor cells past the text
	Cursor   bool
	Selected bool
}

// VisibleCells lays out the lines [Scroll(), Scroll()+Rows()) with no
// selection highlighted.
func (p *Pane) VisibleCells() []Cell {
	return p.Render(cursor.Selection{})
}

// Render lays out the visible window in reading order. Tabs expand to the
// next multiple of the tab width, cells that would cross the right edge are
// clipped, and a blank cursor cell is added when the cursor sits on a line
// terminator or at the end of the buffer.
func (p *Pane) Render(sel cursor.Selection) []Cell {
	buf := p.buf
	n := buf.Len()
	cells := make([]Cell, 0, p.rows*p.cols/2)

	i := cursor.LineOffset(buf, p.scroll)
	lineStart := i
	row, col := 0, 0

	for i < n && row < p.rows {
		if buf.At(i) == '\n' {
			if i == p.cursor && col < p.cols {
				cells = append(cells, p.blankCell(row, col, i, lineStart, sel))
			}
			i++
			lineStart = i
			row++
			col = 0
			continue
		}

		r, size := buf.RuneAt(i)
		size = max(size, 1)

		var width int
		if r == '\t' {
			width = p.tabWidth - col%p.tabWidth
		} else {
			width = max(runewidth.RuneWidth(r), 1)
		}

		if col+width <= p.cols {
			cells = append(cells, Cell{
				Row:      row,
				Col:      col,
				Width:    width,
				Offset:   i,
				Line:     p.scroll + row,
				Column:   i - lineStart,
				Rune:     r,
				Cursor:   i == p.cursor,
				Selected: sel.Contains(i),
			})
		}

		col += width
		i += size
	}

	if i == n && p.cursor == n && row < p.rows && col < p.cols {
		cells = append(cells, p.blankCell(row, col, n, lineStart, sel))
	}

	return cells
}

func (p *Pane) blankCell(row, col, offset, lineStart int, sel cursor.Selection) Cell {
	return Cell{
		Row:      row,
		Col:      col,
		Width:    1,
		Offset:   offset,
		Line:     p.scroll + row,
		Column:   offset - lineStart,
		Rune:     ' ',
		Cursor:   offset == p.cursor,
		Selected: sel.Contains(offset),
	}
}
