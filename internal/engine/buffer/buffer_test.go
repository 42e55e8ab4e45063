package buffer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func checkInvariant(t require.TestingT, b *GapBuffer) {
	require.LessOrEqual(t, 0, b.GapStart())
	require.LessOrEqual(t, b.GapStart(), b.GapEnd())
	require.LessOrEqual(t, b.GapEnd(), b.Extent())
	require.LessOrEqual(t, b.Extent(), b.Cap())
	require.Equal(t, b.Len(), b.Extent()-b.GapLen())
}

func TestNew(t *testing.T) {
	b := New(64)

	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 64, b.Cap())
	assert.Equal(t, 0, b.GapStart())
	assert.Equal(t, DefaultGapSize, b.GapEnd())
	assert.Equal(t, "", b.String())
	checkInvariant(t, b)
}

func TestFromRegion(t *testing.T) {
	region := Allocate(32)
	require.Len(t, region, 32)
	for _, c := range region {
		require.Zero(t, c)
	}

	b := FromRegion(region, WithGapSize(4))
	assert.Equal(t, 4, b.GapEnd())
	assert.Equal(t, 32, b.Cap())

	_, err := b.InsertString("abcdefgh", 0)
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh", b.String())
	checkInvariant(t, b)
}

func TestWithGapSizeIgnoresNonPositive(t *testing.T) {
	b := New(32, WithGapSize(0), WithGapSize(-3))
	assert.Equal(t, DefaultGapSize, b.GapEnd())
}

func TestScenarios(t *testing.T) {
	b := New(128)

	// 1: insert into empty buffer
	pos, err := b.InsertString("Hello", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, pos)
	assert.Equal(t, "Hello", b.String())
	assert.Equal(t, 5, b.Len())

	// 2: append
	_, err = b.InsertString(", World!", 5)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", b.String())

	// 3: delete one char
	assert.Equal(t, 5, b.DeleteChar(5))
	assert.Equal(t, "Hello World!", b.String())
	assert.Equal(t, 12, b.Len())

	// 4: delete six chars
	b.DeleteChars(5, 6)
	assert.Equal(t, "Hello!", b.String())

	// 5: four-byte codepoint in and out
	pos, err = b.InsertString("😀", 5)
	require.NoError(t, err)
	assert.Equal(t, 9, pos)
	assert.Equal(t, 10, b.Len())
	b.DeleteChar(5)
	assert.Equal(t, "Hello!", b.String())
	assert.Equal(t, 6, b.Len())

	checkInvariant(t, b)
}

func TestDeleteCharBoundary(t *testing.T) {
	b := New(64)
	_, err := b.InsertString("abc", 0)
	require.NoError(t, err)

	b.DeleteChar(b.Len())
	assert.Equal(t, "abc", b.String(), "delete at length is a no-op")

	b.DeleteChar(b.Len() - 1)
	assert.Equal(t, "ab", b.String(), "delete of last byte succeeds")

	b.DeleteChar(100)
	b.DeleteChar(-1)
	assert.Equal(t, "ab", b.String())
	checkInvariant(t, b)
}

func TestDeleteCharsClampsAtEnd(t *testing.T) {
	b := New(64)
	_, err := b.InsertString("héllo", 0)
	require.NoError(t, err)

	b.DeleteChars(1, 100)
	assert.Equal(t, "h", b.String())

	b.DeleteChars(0, 0)
	assert.Equal(t, "h", b.String())
	checkInvariant(t, b)
}

func TestDeleteCharTruncatedCodepoint(t *testing.T) {
	b := New(64)
	// leading byte of a 3-byte sequence with only one continuation byte
	_, err := b.Insert([]byte{'a', 0xE2, 0x82}, 0)
	require.NoError(t, err)

	b.DeleteChar(1)
	assert.Equal(t, "a", b.String())
	checkInvariant(t, b)
}

func TestDelete(t *testing.T) {
	b := New(64)
	_, err := b.InsertString("one two three", 0)
	require.NoError(t, err)

	require.NoError(t, b.Delete(3, 7))
	assert.Equal(t, "one three", b.String())

	require.NoError(t, b.Delete(2, 2))
	assert.Equal(t, "one three", b.String())

	tests := []struct {
		name       string
		start, end int
	}{
		{"inverted", 4, 2},
		{"negative", -1, 2},
		{"past end", 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Delete(tt.start, tt.end)
			require.ErrorIs(t, err, ErrInvalidRange)
			assert.Equal(t, "one three", b.String())
		})
	}
}

func TestInsertCapacityExceeded(t *testing.T) {
	b := New(24, WithGapSize(4))
	_, err := b.InsertString(strings.Repeat("x", 20), 0)
	require.NoError(t, err)

	pos, err := b.InsertByte('y', 3)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 3, pos)
	assert.Equal(t, strings.Repeat("x", 20), b.String(), "no partial write")

	_, err = b.InsertString("yy", 0)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 20, b.Len())
	checkInvariant(t, b)
}

func TestInsertPastEnd(t *testing.T) {
	b := New(32)
	_, err := b.InsertString("ab", 0)
	require.NoError(t, err)

	_, err = b.InsertByte('c', 3)
	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 3, rerr.Offset)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, "ab", b.String())
}

func TestInsertGrowsGap(t *testing.T) {
	b := New(256, WithGapSize(4))
	_, err := b.InsertString("0123456789", 0)
	require.NoError(t, err)

	// type in the middle past several gap exhaustions
	pos := 5
	for _, c := range []byte("abcdefghijk") {
		pos, err = b.InsertByte(c, pos)
		require.NoError(t, err)
		checkInvariant(t, b)
	}
	assert.Equal(t, "01234abcdefghijk56789", b.String())
}

func TestAtPanics(t *testing.T) {
	b := New(32)
	_, err := b.InsertString("abc", 0)
	require.NoError(t, err)

	assert.Equal(t, byte('c'), b.At(2))
	assert.Panics(t, func() { b.At(3) })
	assert.Panics(t, func() { b.At(-1) })

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, ErrOutOfRange))
	}()
	b.At(10)
}

func TestSet(t *testing.T) {
	b := New(32)
	_, err := b.InsertString("abc", 0)
	require.NoError(t, err)
	b.MoveGap(1)

	b.Set(0, 'A')
	b.Set(2, 'C')
	assert.Equal(t, "AbC", b.String())

	// one past the content lands in the unused tail
	b.Set(3, 0)
	assert.Equal(t, "AbC", b.String())

	assert.Panics(t, func() { b.Set(3+b.GapLen(), 'x') })
}

func TestMoveGapIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[a-z\n ]{0,40}`).Draw(rt, "text")
		b := New(128)
		_, err := b.InsertString(text, 0)
		require.NoError(rt, err)

		pos := rapid.IntRange(-5, len(text)+5).Draw(rt, "pos")
		b.MoveGap(pos)
		data := bytes.Clone(b.data)
		gs, ge, n := b.GapStart(), b.GapEnd(), b.Len()

		b.MoveGap(pos)
		require.Equal(rt, data, b.data)
		require.Equal(rt, gs, b.GapStart())
		require.Equal(rt, ge, b.GapEnd())
		require.Equal(rt, n, b.Len())
		require.Equal(rt, text, b.String())
	})
}

// TestRoundTrip applies random edits to a buffer and to a flat slice and
// checks they agree after every step.
func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		gap := rapid.IntRange(1, 32).Draw(rt, "gap")
		b := New(512, WithGapSize(gap))
		var model []byte

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for range steps {
			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				s := rapid.StringMatching(`[a-zé😀\n]{0,6}`).Draw(rt, "s")
				pos := rapid.IntRange(0, len(model)).Draw(rt, "pos")
				_, err := b.InsertString(s, pos)
				if err != nil {
					require.ErrorIs(rt, err, ErrCapacityExceeded)
					continue
				}
				model = append(model[:pos], append([]byte(s), model[pos:]...)...)
			case 1:
				pos := rapid.IntRange(0, len(model)+1).Draw(rt, "pos")
				n := rapid.IntRange(0, 4).Draw(rt, "n")
				b.DeleteChars(pos, n)
				model = deleteModel(model, pos, n)
			case 2:
				if len(model) == 0 {
					continue
				}
				start := rapid.IntRange(0, len(model)).Draw(rt, "start")
				end := rapid.IntRange(start, len(model)).Draw(rt, "end")
				require.NoError(rt, b.Delete(start, end))
				model = append(model[:start], model[end:]...)
			case 3:
				b.MoveGap(rapid.IntRange(0, len(model)).Draw(rt, "pos"))
			}

			checkInvariant(rt, b)
			require.Equal(rt, string(model), b.String())
		}

		var out bytes.Buffer
		_, err := b.WriteTo(&out)
		require.NoError(rt, err)
		require.Equal(rt, string(model), out.String())
	})
}

func TestWriteToEmptied(t *testing.T) {
	b := New(64)
	_, err := b.InsertString("abc", 0)
	require.NoError(t, err)
	b.DeleteChars(0, 3)

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, out.String())
}

func deleteModel(model []byte, pos, n int) []byte {
	if pos < 0 || pos >= len(model) || n <= 0 {
		return model
	}
	end := pos
	for ; n > 0 && end < len(model); n-- {
		end = min(end+UTF8Len(model[end]), len(model))
	}
	return append(model[:pos], model[end:]...)
}

func TestUTF8Len(t *testing.T) {
	tests := []struct {
		b    byte
		want int
	}{
		{'a', 1},
		{0x7F, 1},
		{0xC3, 2},
		{0xE2, 3},
		{0xF0, 4},
		{0x80, 1}, // continuation byte
		{0xF8, 1},
		{0xFF, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UTF8Len(tt.b), "byte %#x", tt.b)
	}
}

func TestRuneAt(t *testing.T) {
	b := New(64, WithGapSize(2))
	_, err := b.InsertString("a€b", 0)
	require.NoError(t, err)
	b.MoveGap(2) // split the euro sign across the gap

	r, size := b.RuneAt(1)
	assert.Equal(t, '€', r)
	assert.Equal(t, 3, size)

	_, size = b.RuneAt(5)
	assert.Zero(t, size)
}

func TestSlice(t *testing.T) {
	b := New(64)
	_, err := b.InsertString("hello world", 0)
	require.NoError(t, err)

	for _, gap := range []int{0, 3, 5, 11} {
		b.MoveGap(gap)
		assert.Equal(t, "lo wo", string(b.Slice(3, 8)), "gap at %d", gap)
		assert.Equal(t, "hello world", string(b.Slice(-4, 40)))
		assert.Empty(t, b.Slice(6, 2))
	}
}

func TestReset(t *testing.T) {
	b := New(64)
	_, err := b.InsertString("abc", 0)
	require.NoError(t, err)
	b.Reset()
	assert.True(t, b.IsEmpty())
	checkInvariant(t, b)
}

func TestLoadStripsCR(t *testing.T) {
	b := New(64)
	_, err := b.InsertString("old", 0)
	require.NoError(t, err)

	require.NoError(t, b.Load(strings.NewReader("a\r\nb\rc\n")))
	assert.Equal(t, "a\nbc\n", b.String())
	assert.Equal(t, b.Len(), b.GapStart())
	checkInvariant(t, b)

	pos, err := b.InsertString("!", b.Len())
	require.NoError(t, err)
	assert.Equal(t, 6, pos)
}

func TestLoadCapacityExceeded(t *testing.T) {
	b := New(20, WithGapSize(4))
	_, err := b.InsertString("keep", 0)
	require.NoError(t, err)

	err = b.Load(strings.NewReader(strings.Repeat("z", 17)))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, "keep", b.String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.c")
	require.NoError(t, os.WriteFile(path, []byte("int main() {\r\n}\r\n"), 0o644))

	b := New(128)
	require.NoError(t, b.LoadFile(path))
	assert.Equal(t, "int main() {\n}\n", b.String())

	err := b.LoadFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEdit(t *testing.T) {
	ins := NewInsert(4, 3)
	assert.Equal(t, 4, ins.Start())
	assert.Equal(t, 7, ins.End())
	assert.Equal(t, ChangeInsert, ins.Kind())
	assert.Equal(t, "insert[4, 7)", ins.String())

	del := NewDelete(2, 5)
	assert.Equal(t, 2, del.Start())
	assert.Equal(t, 5, del.End())
	assert.Equal(t, 3, del.Len())
	assert.Equal(t, ChangeDelete, del.Kind())

	assert.True(t, Edit{PosBefore: 3, PosAfter: 3}.IsEmpty())
	assert.Equal(t, ChangeNone, Edit{}.Kind())
}
