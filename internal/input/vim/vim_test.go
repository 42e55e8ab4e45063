package vim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ayed/internal/input/key"
	"github.com/dshills/ayed/internal/input/keymap"
)

// feed pushes each byte of s and resolves after every push, clearing on a
// final status the way the editor does. It returns the completed actions.
func feed(seq *Sequence, s string) []keymap.Action {
	var out []keymap.Action
	for i := 0; i < len(s); i++ {
		seq.Push(s[i], false)
		a, st := Resolve(seq.Bytes())
		switch st {
		case StatusComplete:
			out = append(out, a)
			seq.Clear()
		case StatusInvalid:
			seq.Clear()
		}
	}
	return out
}

func TestResolveSingles(t *testing.T) {
	tests := []struct {
		in   string
		want keymap.Action
	}{
		{"x", keymap.DeleteChar},
		{"h", keymap.NormalCursorBack},
		{"j", keymap.CursorDown},
		{"k", keymap.CursorUp},
		{"l", keymap.NormalCursorNext},
		{"w", keymap.GoWordNext},
		{"e", keymap.GoWordEnd},
		{"b", keymap.GoWordPrev},
		{"y", keymap.YankLine},
		{"p", keymap.Paste},
		{"i", keymap.InsertMode},
		{"a", keymap.InsertModeNext},
		{"I", keymap.InsertBeginningOfLine},
		{"A", keymap.InsertEndOfLine},
		{"o", keymap.NewLineAfter},
		{"O", keymap.NewLineBefore},
		{"v", keymap.VisualMode},
		{"V", keymap.VisualModeLine},
		{"G", keymap.GotoBufferEnd},
		{"{", keymap.SkipParagraphUp},
		{"}", keymap.SkipParagraphDown},
		{"$", keymap.GotoLineEnd},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, st := Resolve([]byte(tt.in))
			assert.Equal(t, StatusComplete, st)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestResolveDoubles(t *testing.T) {
	tests := []struct {
		in   string
		want keymap.Action
	}{
		{"gg", keymap.GotoBufferBegin},
		{"dd", keymap.DeleteLine},
		{"dw", keymap.DeleteWord},
		{"cw", keymap.ChangeWord},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, st := Resolve([]byte(tt.in[:1]))
			assert.Equal(t, StatusPending, st, "prefix must wait")
			assert.Equal(t, keymap.Nop, a)

			a, st = Resolve([]byte(tt.in))
			assert.Equal(t, StatusComplete, st)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestResolveInvalid(t *testing.T) {
	for _, in := range []string{"z", "Q", "3", "3d", "33", "dx", "gq", "cc", "^x", "ggg"} {
		t.Run(in, func(t *testing.T) {
			_, st := Resolve([]byte(in))
			assert.Equal(t, StatusInvalid, st)
		})
	}

	_, st := Resolve(nil)
	assert.Equal(t, StatusPending, st)

	_, st = Resolve([]byte{CtrlMarker})
	assert.Equal(t, StatusPending, st)
}

func TestFeedSequence(t *testing.T) {
	var seq Sequence

	// "g" waits, "g" completes
	assert.Equal(t, []keymap.Action{keymap.GotoBufferBegin}, feed(&seq, "gg"))
	assert.True(t, seq.IsEmpty())

	// unknown pair is dropped and the next key starts fresh
	assert.Equal(t, []keymap.Action{keymap.DeleteChar}, feed(&seq, "dqx"))

	// a count is dropped, the motion after it still runs
	assert.Equal(t, []keymap.Action{keymap.CursorDown}, feed(&seq, "3j"))
	assert.Empty(t, feed(&seq, "3dj"))

	assert.Equal(t, []keymap.Action{keymap.DeleteLine, keymap.ChangeWord}, feed(&seq, "ddcw"))
}

func TestSequencePush(t *testing.T) {
	var seq Sequence
	require.True(t, seq.Push('r', true))
	assert.Equal(t, "^r", seq.String())
	assert.Equal(t, 2, seq.Len())

	for seq.Len() < MaxPending {
		require.True(t, seq.Push('a', false))
	}
	assert.False(t, seq.Push('b', false))
	assert.Equal(t, MaxPending, seq.Len())

	seq.Clear()
	for i := 0; i < MaxPending-1; i++ {
		require.True(t, seq.Push('a', false))
	}
	assert.False(t, seq.Push('a', true), "ctrl needs two bytes")
	assert.Equal(t, MaxPending-1, seq.Len())
}

func TestSequencePushEvent(t *testing.T) {
	var seq Sequence
	require.True(t, seq.PushEvent(key.NewRuneEvent('g', key.ModNone)))
	require.True(t, seq.PushEvent(key.NewRuneEvent('G', key.ModNone)))
	require.True(t, seq.PushEvent(key.Event{Combo: key.NewCombo('R', key.ModCtrl)}))
	assert.Equal(t, "gG^r", seq.String())

	assert.False(t, seq.PushEvent(key.NewSpecialEvent(key.KeyLeft, key.ModNone)))
	assert.False(t, seq.PushEvent(key.NewRuneEvent('é', key.ModNone)))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "complete", StatusComplete.String())
	assert.Equal(t, "invalid", StatusInvalid.String())
	assert.Equal(t, "unknown", Status(9).String())
}

func TestCommands(t *testing.T) {
	cmds := Commands()
	assert.Len(t, cmds, 26)
	for in, want := range cmds {
		a, st := Resolve([]byte(in))
		assert.Equal(t, StatusComplete, st, in)
		assert.Equal(t, want, a, in)
	}
}

func TestRegisterStore(t *testing.T) {
	rs := NewRegisterStore()
	assert.True(t, rs.Unnamed().IsEmpty())

	rs.SetYank("hello\n", true)
	assert.Equal(t, Register{Content: "hello\n", Linewise: true}, rs.Unnamed())

	rs.SetDelete("w", false)
	assert.Equal(t, "w", rs.Unnamed().Content)
	small, ok := rs.Get(RegisterSmallDelete)
	require.True(t, ok)
	assert.Equal(t, "w", small.Content)

	yank, _ := rs.Get(RegisterLastYank)
	assert.Equal(t, "hello\n", yank.Content)

	rs.SetDelete("one\n", true)
	rs.SetDelete("two\n", true)
	r1, _ := rs.Get('1')
	r2, _ := rs.Get('2')
	assert.Equal(t, "two\n", r1.Content)
	assert.Equal(t, "one\n", r2.Content)

	_, ok = rs.Get('z')
	assert.False(t, ok)

	rs.Clear()
	assert.True(t, rs.Unnamed().IsEmpty())
}
