package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ayed/internal/engine/buffer"
	"github.com/dshills/ayed/internal/input/key"
	"github.com/dshills/ayed/internal/input/mode"
	"github.com/dshills/ayed/internal/input/vim"
)

func newNormalEditor(t *testing.T, text string, pos int) (*Editor, *recorder) {
	t.Helper()
	e, rec := newTestEditor(t, text, WithMode(mode.Normal))
	e.Pane().SetCursor(pos)
	return e, rec
}

func TestPendingGG(t *testing.T) {
	e, rec := newNormalEditor(t, "abc\ndef", 5)

	press(e, "g")
	assert.Equal(t, "g", e.Pending())
	assert.Equal(t, 5, e.Pane().Cursor())

	press(e, "g")
	assert.Empty(t, e.Pending())
	assert.Zero(t, e.Pane().Cursor())
	assert.Empty(t, rec.edits)
}

func TestPendingInvalidPairClears(t *testing.T) {
	e, rec := newNormalEditor(t, "abc\ndef", 5)

	press(e, "gq")
	assert.Empty(t, e.Pending())
	assert.Equal(t, 5, e.Pane().Cursor())
	assert.Equal(t, "abc\ndef", e.Buffer().String())
	assert.Empty(t, rec.edits)

	// the next key starts a fresh sequence
	press(e, "x")
	assert.Equal(t, "abc\ndf", e.Buffer().String())
}

func TestPendingEscapeClears(t *testing.T) {
	e, _ := newNormalEditor(t, "abc", 0)
	press(e, "d")
	assert.Equal(t, "d", e.Pending())

	special(e, key.KeyEscape)
	assert.Empty(t, e.Pending())
	assert.Equal(t, mode.Normal, e.Mode())

	press(e, "w")
	assert.Equal(t, "abc", e.Buffer().String())
}

func TestPendingCtrlAndCounts(t *testing.T) {
	e, _ := newNormalEditor(t, "one\ntwo\nthree", 0)

	e.Dispatch(key.NewRuneEvent('r', key.ModCtrl))
	assert.Empty(t, e.Pending(), "ctrl sequences resolve to nothing")

	press(e, "3j")
	assert.Equal(t, 1, e.Pane().CursorLine(), "count is dropped, motion runs once")
}

func TestPendingNeverOverflows(t *testing.T) {
	e, _ := newNormalEditor(t, "abc", 0)
	for i := 0; i < 3*vim.MaxPending; i++ {
		press(e, "q")
		assert.LessOrEqual(t, len(e.Pending()), vim.MaxPending)
	}
}

func TestNormalMotions(t *testing.T) {
	text := "foo bar\n  baz\n\nend"
	tests := []struct {
		name  string
		start int
		keys  string
		want  int
	}{
		{"h stops at line start", 8, "h", 8},
		{"h", 2, "h", 1},
		{"l stops before newline", 6, "l", 6},
		{"l", 0, "l", 1},
		{"j", 1, "j", 9},
		{"k", 9, "k", 1},
		{"w", 0, "w", 4},
		{"e", 0, "e", 2},
		{"b", 4, "b", 0},
		{"G", 0, "G", len(text)},
		{"gg", 12, "gg", 0},
		{"$", 0, "$", 7},
		{"}", 0, "}", 14},
		{"{", 16, "{", 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newNormalEditor(t, text, tt.start)
			press(e, tt.keys)
			assert.Equal(t, tt.want, e.Pane().Cursor())
			assert.Empty(t, rec.edits)
			assert.Empty(t, e.Pending())
		})
	}
}

func TestArrowsInNormal(t *testing.T) {
	e, _ := newNormalEditor(t, "ab\ncd", 1)
	special(e, key.KeyRight)
	assert.Equal(t, 1, e.Pane().Cursor())
	special(e, key.KeyDown)
	assert.Equal(t, 4, e.Pane().Cursor())
	special(e, key.KeyLeft)
	assert.Equal(t, 3, e.Pane().Cursor())
}

func TestInsertEntryCommands(t *testing.T) {
	tests := []struct {
		name string
		keys string
		text string
		want string
		cur  int
	}{
		{"i", "i", "  abc", "  abc", 3},
		{"a", "a", "  abc", "  abc", 4},
		{"I", "I", "  abc", "  abc", 0},
		{"A", "A", "  abc", "  abc", 5},
		{"o", "o", "  abc\nx", "  abc\n  \nx", 8},
		{"O", "O", "  abc", "  \n  abc", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newNormalEditor(t, tt.text, 3)
			press(e, tt.keys)
			assert.Equal(t, mode.Insert, e.Mode())
			assert.Equal(t, tt.want, e.Buffer().String())
			assert.Equal(t, tt.cur, e.Pane().Cursor())
		})
	}
}

func TestAppendOnEmptyLine(t *testing.T) {
	e, _ := newNormalEditor(t, "a\n\nb", 2)
	press(e, "a")
	assert.Equal(t, 2, e.Pane().Cursor())
}

func TestNewLineBeforeOnLaterLine(t *testing.T) {
	e, rec := newNormalEditor(t, "foo\nbar", 5)
	press(e, "O")
	assert.Equal(t, "foo\n\nbar", e.Buffer().String())
	assert.Equal(t, 4, e.Pane().Cursor())
	assert.Equal(t, []buffer.Edit{buffer.NewInsert(3, 1)}, rec.edits)

	press(e, "hi")
	assert.Equal(t, "foo\nhi\nbar", e.Buffer().String())
}

func TestEscapeFromInsertReturnsToNormal(t *testing.T) {
	e, _ := newNormalEditor(t, "abc", 0)
	press(e, "i")
	require.Equal(t, mode.Insert, e.Mode())
	press(e, "x")
	special(e, key.KeyEscape)
	assert.Equal(t, mode.Normal, e.Mode())
	assert.Equal(t, "xabc", e.Buffer().String())
	assert.Empty(t, e.Pending())
}

func TestDeleteChar(t *testing.T) {
	e, rec := newNormalEditor(t, "aéc", 1)
	press(e, "x")
	assert.Equal(t, "ac", e.Buffer().String())
	assert.Equal(t, 1, e.Pane().Cursor())
	assert.Equal(t, []buffer.Edit{buffer.NewDelete(1, 3)}, rec.edits)

	e.Pane().SetCursor(2)
	press(e, "x")
	assert.Equal(t, "ac", e.Buffer().String(), "x at end of buffer does nothing")
}

func TestDeleteLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want string
		cur  int
		reg  string
	}{
		{"first", "one\ntwo\nthree", 1, "two\nthree", 0, "one\n"},
		{"middle", "one\ntwo\nthree", 5, "one\nthree", 4, "two\n"},
		{"last", "one\ntwo\nthree", 10, "one\ntwo", 4, "three\n"},
		{"only", "one", 1, "", 0, "one\n"},
		{"trailing empty line", "a\n", 2, "a", 0, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newNormalEditor(t, tt.text, tt.pos)
			press(e, "dd")
			assert.Equal(t, tt.want, e.Buffer().String())
			assert.Equal(t, tt.cur, e.Pane().Cursor())
			assert.Len(t, rec.edits, 1)

			reg := e.Registers().Unnamed()
			assert.Equal(t, tt.reg, reg.Content)
			assert.True(t, reg.Linewise)
		})
	}
}

func TestDeleteLineEmptyBuffer(t *testing.T) {
	e, rec := newNormalEditor(t, "", 0)
	press(e, "dd")
	assert.Empty(t, rec.edits)
	assert.True(t, e.Registers().Unnamed().IsEmpty())
}

func TestDeleteWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		want string
		reg  string
	}{
		{"word and space", "foo bar", 0, "bar", "foo "},
		{"last word", "foo bar", 4, "foo ", "bar"},
		{"stops at line end", "foo\nbar", 0, "\nbar", "foo"},
		{"punctuation", "a.b", 1, "ab", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newNormalEditor(t, tt.text, tt.pos)
			press(e, "dw")
			assert.Equal(t, tt.want, e.Buffer().String())
			assert.Equal(t, tt.pos, e.Pane().Cursor())
			assert.Equal(t, tt.reg, e.Registers().Unnamed().Content)
			assert.Equal(t, mode.Normal, e.Mode())
		})
	}
}

func TestDeleteWordOnNewline(t *testing.T) {
	e, rec := newNormalEditor(t, "a\n\nb", 2)
	press(e, "dw")
	assert.Equal(t, "a\n\nb", e.Buffer().String())
	assert.Empty(t, rec.edits)
}

func TestChangeWord(t *testing.T) {
	e, _ := newNormalEditor(t, "foo bar", 0)
	press(e, "cw")
	assert.Equal(t, mode.Insert, e.Mode())
	assert.Equal(t, " bar", e.Buffer().String())
	assert.Equal(t, "foo", e.Registers().Unnamed().Content)

	press(e, "baz")
	assert.Equal(t, "baz bar", e.Buffer().String())
}

func TestChangeWordOnNewline(t *testing.T) {
	e, rec := newNormalEditor(t, "a\n\nb", 2)
	press(e, "cw")
	assert.Equal(t, mode.Insert, e.Mode())
	assert.Empty(t, rec.edits)
}

func TestYankPasteLine(t *testing.T) {
	e, rec := newNormalEditor(t, "one\ntwo", 1)
	press(e, "y")
	assert.Empty(t, rec.edits)
	assert.Equal(t, "one\n", e.Registers().Unnamed().Content)

	press(e, "p")
	assert.Equal(t, "one\none\ntwo", e.Buffer().String())
	assert.Equal(t, 4, e.Pane().Cursor())

	e.Pane().SetCursor(9)
	press(e, "p")
	assert.Equal(t, "one\none\ntwo\none", e.Buffer().String())
	assert.Equal(t, 12, e.Pane().Cursor())
}

func TestPasteCharwise(t *testing.T) {
	e, _ := newNormalEditor(t, "ab", 0)
	e.Registers().SetYank("xy", false)

	press(e, "p")
	assert.Equal(t, "axyb", e.Buffer().String())
	assert.Equal(t, 2, e.Pane().Cursor())
}

func TestPasteEmptyRegister(t *testing.T) {
	e, rec := newNormalEditor(t, "ab", 0)
	press(e, "p")
	assert.Empty(t, rec.edits)
}

func TestDeleteThenPaste(t *testing.T) {
	e, _ := newNormalEditor(t, "one\ntwo\nthree", 0)
	press(e, "ddp")
	assert.Equal(t, "two\none\nthree", e.Buffer().String())
}

func TestVisualDelete(t *testing.T) {
	e, rec := newNormalEditor(t, "hello world", 0)
	press(e, "v")
	assert.Equal(t, mode.Visual, e.Mode())
	assert.Zero(t, e.Pane().Visual())

	press(e, "e")
	assert.Equal(t, 4, e.Pane().Cursor())
	press(e, "d")

	assert.Equal(t, mode.Normal, e.Mode())
	assert.Equal(t, " world", e.Buffer().String())
	assert.Equal(t, "hello", e.Registers().Unnamed().Content)
	assert.Zero(t, e.Pane().Cursor())
	assert.Equal(t, []buffer.Edit{buffer.NewDelete(0, 5)}, rec.edits)
}

func TestVisualBackwards(t *testing.T) {
	e, _ := newNormalEditor(t, "hello world", 8)
	press(e, "vbd")
	assert.Equal(t, "hello ld", e.Buffer().String())
	assert.Equal(t, 6, e.Pane().Cursor())
}

func TestVisualYank(t *testing.T) {
	e, rec := newNormalEditor(t, "hello world", 6)
	press(e, "vly")
	assert.Equal(t, mode.Normal, e.Mode())
	assert.Equal(t, "wo", e.Registers().Unnamed().Content)
	assert.Equal(t, 6, e.Pane().Cursor())
	assert.Empty(t, rec.edits)
}

func TestVisualEscape(t *testing.T) {
	e, _ := newNormalEditor(t, "abc", 1)
	press(e, "v")
	special(e, key.KeyEscape)
	assert.Equal(t, mode.Normal, e.Mode())
	assert.Equal(t, "abc", e.Buffer().String())
}

func TestVisualLine(t *testing.T) {
	e, _ := newNormalEditor(t, "a\nb\nc", 0)
	press(e, "V")
	assert.Equal(t, mode.VisualLine, e.Mode())

	press(e, "jy")
	assert.Equal(t, mode.Normal, e.Mode())
	reg := e.Registers().Unnamed()
	assert.Equal(t, "a\nb\n", reg.Content)
	assert.True(t, reg.Linewise)
	assert.Zero(t, e.Pane().Cursor())

	press(e, "Gp")
	assert.Equal(t, "a\nb\nc\na\nb", e.Buffer().String())
	assert.Equal(t, 6, e.Pane().Cursor())
}

func TestVisualLineDeleteToEnd(t *testing.T) {
	e, _ := newNormalEditor(t, "a\nb\nc", 2)
	press(e, "VGd")
	assert.Equal(t, "a\n", e.Buffer().String())
	assert.Equal(t, "b\nc\n", e.Registers().Unnamed().Content)
}

func TestVisualLineBufferBegin(t *testing.T) {
	e, _ := newNormalEditor(t, "a\nb\nc", 4)
	press(e, "Vgd")
	assert.Empty(t, e.Buffer().String())
}

func TestSwitchVisualKeepsAnchor(t *testing.T) {
	e, _ := newNormalEditor(t, "ab\ncd", 1)
	press(e, "vjV")
	assert.Equal(t, mode.VisualLine, e.Mode())
	assert.Equal(t, 1, e.Pane().Visual())
}

func TestPageMotion(t *testing.T) {
	buf := buffer.New(1 << 12)
	_, err := buf.InsertString("0\n1\n2\n3\n4\n5\n6\n7\n8\n9", 0)
	require.NoError(t, err)
	e := New(newPane(buf, 3), WithMode(mode.Normal))

	special(e, key.KeyPageDown)
	assert.Equal(t, 2, e.Pane().CursorLine())
	special(e, key.KeyPageDown)
	assert.Equal(t, 4, e.Pane().CursorLine())
	special(e, key.KeyPageUp)
	assert.Equal(t, 2, e.Pane().CursorLine())
}

func TestModeTransitionsNotify(t *testing.T) {
	e, _ := newNormalEditor(t, "abc", 0)
	var got []mode.Mode
	e.Modes().OnChange(func(_, to mode.Mode) { got = append(got, to) })

	press(e, "i")
	special(e, key.KeyEscape)
	press(e, "v")
	special(e, key.KeyEscape)
	press(e, "V")
	special(e, key.KeyEscape)

	assert.Equal(t, []mode.Mode{
		mode.Insert, mode.Normal,
		mode.Visual, mode.Normal,
		mode.VisualLine, mode.Normal,
	}, got)
}
