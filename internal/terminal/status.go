package terminal

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/ayed/internal/input/mode"
)

// Status is the content of the status line.
type Status struct {
	Mode    mode.Mode
	Name    string // file name, empty for a scratch buffer
	Pending string // unresolved normal-mode keys
	Line    int    // zero-based
	Column  int    // zero-based byte column
	Message string // replaces the name when set
}

// Format lays the status line out for width columns and returns the left
// part (mode and name) and the right part (pending keys and position).
// The left part is truncated so the two never overlap.
func (st Status) Format(width int) (string, string) {
	name := st.Name
	if name == "" {
		name = "[No Name]"
	}
	if st.Message != "" {
		name = st.Message
	}
	left := fmt.Sprintf(" %s  %s", st.Mode.DisplayName(), name)

	right := fmt.Sprintf("%d:%d ", st.Line+1, st.Column+1)
	if st.Pending != "" {
		right = st.Pending + "  " + right
	}

	room := width - runewidth.StringWidth(right) - 1
	if room < 0 {
		room = 0
	}
	if runewidth.StringWidth(left) > room {
		left = runewidth.Truncate(left, room, "…")
	}
	return left, right
}

// modeWidth is the width of " MODE " at the start of the left part.
func (st Status) modeWidth() int {
	return len(st.Mode.DisplayName()) + 2
}

func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}

func runeWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}
