package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ayed/internal/engine/cursor"
	"github.com/dshills/ayed/internal/pane"
)

// Styles holds the styles used for drawing.
type Styles struct {
	Text      tcell.Style
	Selection tcell.Style
	Status    tcell.Style
	Modes     map[string]tcell.Style // keyed by mode display name
	Message   tcell.Style
}

// DefaultStyles returns the built-in color scheme.
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	mode := base.Bold(true)
	return Styles{
		Text:      base,
		Selection: base.Reverse(true),
		Status:    base.Background(tcell.ColorGray).Foreground(tcell.ColorWhite),
		Modes: map[string]tcell.Style{
			"NORMAL": mode.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite),
			"INSERT": mode.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack),
			"VISUAL": mode.Background(tcell.ColorPurple).Foreground(tcell.ColorWhite),
			"V-LINE": mode.Background(tcell.ColorPurple).Foreground(tcell.ColorWhite),
		},
		Message: base.Foreground(tcell.ColorYellow),
	}
}

// Draw renders p into all rows but the last, the status line into the
// last row, and shows the screen. The pane is expected to be sized to
// the screen with one row reserved and its scroll updated.
func (t *Terminal) Draw(p *pane.Pane, sel cursor.Selection, st Status) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.screen
	s.Clear()
	w, h := s.Size()

	cursorShown := false
	for _, c := range p.Render(sel) {
		if c.Row >= h-1 {
			break
		}
		style := t.styles.Text
		if c.Selected {
			style = t.styles.Selection
		}
		r := c.Rune
		if r == '\t' {
			r = ' '
			for i := 1; i < c.Width && c.Col+i < w; i++ {
				s.SetContent(c.Col+i, c.Row, ' ', nil, style)
			}
		}
		s.SetContent(c.Col, c.Row, r, nil, style)
		if c.Cursor {
			s.ShowCursor(c.Col, c.Row)
			cursorShown = true
		}
	}

	t.drawStatus(st, w, h-1)
	if cursorShown {
		t.setCursorStyle(st.Mode.CursorStyle())
	} else {
		s.HideCursor()
	}
	s.Show()
}

func (t *Terminal) drawStatus(st Status, width, row int) {
	if row < 0 {
		return
	}
	bar := t.styles.Status
	if st.Message != "" {
		bar = t.styles.Message
	}
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, bar)
	}

	left, right := st.Format(width)
	modeStyle, ok := t.styles.Modes[st.Mode.DisplayName()]
	if !ok || st.Message != "" {
		modeStyle = bar
	}
	col := t.putString(0, row, left, width, modeStyle, bar, st.modeWidth())
	if start := width - stringWidth(right); start > col {
		t.putString(start, row, right, width, bar, bar, 0)
	}
}

// putString writes s from col, styling the first highlight columns
// with hi and the rest with style. It returns the column after s.
func (t *Terminal) putString(col, row int, s string, width int, hi, style tcell.Style, highlight int) int {
	start := col
	for _, r := range s {
		rw := runeWidth(r)
		if col+rw > width {
			break
		}
		st := style
		if col-start < highlight {
			st = hi
		}
		t.screen.SetContent(col, row, r, nil, st)
		col += rw
	}
	return col
}
