package buffer

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ByteOffset is a logical byte position in the buffer.
type ByteOffset = int

// DefaultGapSize is the size of the initial gap and the amount the gap grows
// by whenever an insertion exhausts it.
const DefaultGapSize = 16

// Errors returned by buffer operations.
var (
	ErrOutOfRange       = errors.New("offset out of range")
	ErrCapacityExceeded = errors.New("buffer capacity exceeded")
	ErrInvalidRange     = errors.New("invalid range")
)

// RangeError reports an offset outside the valid logical range.
type RangeError struct {
	Offset ByteOffset
	Len    ByteOffset
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("offset %d out of range [0, %d)", e.Offset, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// GapBuffer is a fixed-capacity byte store with a relocatable gap.
type GapBuffer struct {
	data     []byte
	gapStart int
	gapEnd   int
	length   int
	gapSize  int
}

// Allocate returns a zero-initialized region of the given capacity.
func Allocate(capacity int) []byte {
	if capacity < 0 {
		capacity = 0
	}
	return make([]byte, capacity)
}

// New allocates a region of the given capacity and returns a buffer over it.
func New(capacity int, opts ...Option) *GapBuffer {
	return FromRegion(Allocate(capacity), opts...)
}

// FromRegion returns an empty buffer viewing region. The caller hands over
// ownership of region; nothing else may write to it afterwards.
func FromRegion(region []byte, opts ...Option) *GapBuffer {
	b := &GapBuffer{
		data:    region,
		gapSize: DefaultGapSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.gapEnd = min(b.gapSize, len(b.data))
	return b
}

// Len returns the number of logical bytes.
func (b *GapBuffer) Len() int {
	return b.length
}

// Cap returns the size of the backing region.
func (b *GapBuffer) Cap() int {
	return len(b.data)
}

// GapStart returns the physical start of the gap.
func (b *GapBuffer) GapStart() int {
	return b.gapStart
}

// GapEnd returns the physical end of the gap.
func (b *GapBuffer) GapEnd() int {
	return b.gapEnd
}

// GapLen returns the current size of the gap.
func (b *GapBuffer) GapLen() int {
	return b.gapEnd - b.gapStart
}

// Extent returns the physical end of the content after the gap. Bytes from
// Extent to Cap are unused.
func (b *GapBuffer) Extent() int {
	return b.gapEnd + (b.length - b.gapStart)
}

// IsEmpty reports whether the buffer holds no text.
func (b *GapBuffer) IsEmpty() bool {
	return b.length == 0
}

// physical maps a logical index to its index in data.
func (b *GapBuffer) physical(i int) int {
	if i < b.gapStart {
		return i
	}
	return i + (b.gapEnd - b.gapStart)
}

// At returns the byte at logical offset i.
// It panics with a *RangeError if i is outside [0, Len()).
func (b *GapBuffer) At(i ByteOffset) byte {
	if i < 0 || i >= b.length {
		panic(&RangeError{Offset: i, Len: b.length})
	}
	return b.data[b.physical(i)]
}

// Set writes c at logical offset i. Offsets up to Len()+GapLen() are
// accepted so a terminator can be written just past the content; anything
// beyond panics with a *RangeError.
func (b *GapBuffer) Set(i ByteOffset, c byte) {
	limit := b.length + b.GapLen()
	if i < 0 || i >= limit {
		panic(&RangeError{Offset: i, Len: limit})
	}
	p := b.physical(i)
	if p >= len(b.data) {
		panic(&RangeError{Offset: i, Len: len(b.data) - b.GapLen()})
	}
	b.data[p] = c
}

// RuneAt decodes the codepoint starting at pos. It returns utf8.RuneError
// and size 0 when pos is outside the content.
func (b *GapBuffer) RuneAt(pos ByteOffset) (rune, int) {
	if pos < 0 || pos >= b.length {
		return utf8.RuneError, 0
	}
	var tmp [utf8.UTFMax]byte
	n := 0
	for i := pos; i < b.length && n < len(tmp); i++ {
		tmp[n] = b.data[b.physical(i)]
		n++
	}
	return utf8.DecodeRune(tmp[:n])
}

// MoveGap relocates the gap so that it starts at logical offset pos.
// pos is clamped to [0, Len()]. The cost is proportional to the distance
// the gap travels.
func (b *GapBuffer) MoveGap(pos ByteOffset) {
	pos = max(0, min(pos, b.length))
	if pos == b.gapStart {
		return
	}

	if b.gapStart == b.gapEnd {
		b.gapStart = pos
		b.gapEnd = pos
		return
	}

	if pos < b.gapStart {
		n := b.gapStart - pos
		copy(b.data[b.gapEnd-n:b.gapEnd], b.data[pos:b.gapStart])
		b.gapStart -= n
		b.gapEnd -= n
	} else {
		n := pos - b.gapStart
		copy(b.data[b.gapStart:b.gapStart+n], b.data[b.gapEnd:b.gapEnd+n])
		b.gapStart += n
		b.gapEnd += n
	}
}

// growGap shifts the content after the gap forward by gapSize bytes.
func (b *GapBuffer) growGap() {
	extent := b.Extent()
	shift := min(b.gapSize, len(b.data)-extent)
	copy(b.data[b.gapEnd+shift:extent+shift], b.data[b.gapEnd:extent])
	b.gapEnd += shift
}

func (b *GapBuffer) checkInsert(n int, pos ByteOffset) error {
	if pos < 0 || pos > b.length {
		return &RangeError{Offset: pos, Len: b.length + 1}
	}
	if b.length+n > len(b.data)-b.gapSize {
		return fmt.Errorf("inserting %d bytes into %d/%d: %w", n, b.length, len(b.data), ErrCapacityExceeded)
	}
	return nil
}

// InsertByte inserts c at pos and returns the offset just after it.
func (b *GapBuffer) InsertByte(c byte, pos ByteOffset) (ByteOffset, error) {
	if err := b.checkInsert(1, pos); err != nil {
		return pos, err
	}

	b.MoveGap(pos)
	if b.gapStart == b.gapEnd {
		b.growGap()
	}
	b.data[b.gapStart] = c
	b.gapStart++
	b.length++

	return pos + 1, nil
}

// InsertString inserts s at pos and returns the offset just after it.
func (b *GapBuffer) InsertString(s string, pos ByteOffset) (ByteOffset, error) {
	return insertInto(b, s, pos)
}

// Insert inserts p at pos and returns the offset just after it.
func (b *GapBuffer) Insert(p []byte, pos ByteOffset) (ByteOffset, error) {
	return insertInto(b, p, pos)
}

func insertInto[T ~string | ~[]byte](b *GapBuffer, s T, pos ByteOffset) (ByteOffset, error) {
	n := len(s)
	if err := b.checkInsert(n, pos); err != nil {
		return pos, err
	}
	if n == 0 {
		return pos, nil
	}

	b.MoveGap(pos)
	for len(s) > 0 {
		if b.gapStart == b.gapEnd {
			b.growGap()
		}
		c := copy(b.data[b.gapStart:b.gapEnd], s)
		s = s[c:]
		b.gapStart += c
		b.length += c
	}

	return pos + n, nil
}

// DeleteChar removes the codepoint starting at pos and returns pos.
// Deleting at or past the end is a no-op.
func (b *GapBuffer) DeleteChar(pos ByteOffset) ByteOffset {
	return b.DeleteChars(pos, 1)
}

// DeleteChars removes up to n codepoints starting at pos and returns pos.
// pos at or past the end is a no-op. A run reaching past the end is
// clamped and deletes through the last byte rather than being refused, so
// pos+n >= Len() still deletes.
func (b *GapBuffer) DeleteChars(pos ByteOffset, n int) ByteOffset {
	if pos < 0 || pos >= b.length || n <= 0 {
		return pos
	}

	b.MoveGap(pos)
	extent := b.Extent()
	for n > 0 && b.gapEnd < extent {
		cl := min(UTF8Len(b.data[b.gapEnd]), extent-b.gapEnd)
		b.gapEnd += cl
		b.length -= cl
		n--
	}

	return pos
}

// Delete removes the bytes in [start, end).
func (b *GapBuffer) Delete(start, end ByteOffset) error {
	if start < 0 || start > end || end > b.length {
		return fmt.Errorf("delete [%d, %d) of %d: %w", start, end, b.length, ErrInvalidRange)
	}
	if start == end {
		return nil
	}

	b.MoveGap(start)
	b.gapEnd += end - start
	b.length -= end - start
	return nil
}

// Reset empties the buffer without touching the region's size.
func (b *GapBuffer) Reset() {
	b.gapStart = 0
	b.gapEnd = min(b.gapSize, len(b.data))
	b.length = 0
}

// UTF8Len returns the encoded length of the codepoint introduced by the
// leading byte c. Invalid leading bytes count as 1 so editing never stalls
// on malformed input.
func UTF8Len(c byte) int {
	switch {
	case c&0x80 == 0:
		return 1
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// AppendTo appends the logical content to dst and returns the result.
func (b *GapBuffer) AppendTo(dst []byte) []byte {
	dst = append(dst, b.data[:b.gapStart]...)
	return append(dst, b.data[b.gapEnd:b.Extent()]...)
}

// Bytes returns a copy of the logical content.
func (b *GapBuffer) Bytes() []byte {
	return b.AppendTo(make([]byte, 0, b.length))
}

// String returns the logical content as a string.
func (b *GapBuffer) String() string {
	return string(b.Bytes())
}

// Slice returns a copy of the bytes in [start, end), clamped to the content.
func (b *GapBuffer) Slice(start, end ByteOffset) []byte {
	start = max(0, min(start, b.length))
	end = max(start, min(end, b.length))

	out := make([]byte, 0, end-start)
	if start < b.gapStart {
		out = append(out, b.data[start:min(end, b.gapStart)]...)
	}
	if end > b.gapStart {
		from := max(start, b.gapStart)
		out = append(out, b.data[b.physical(from):b.physical(end-1)+1]...)
	}
	return out
}

// WriteTo writes the logical content to w.
func (b *GapBuffer) WriteTo(w io.Writer) (int64, error) {
	n1, err := w.Write(b.data[:b.gapStart])
	if err != nil {
		return int64(n1), err
	}
	n2, err := w.Write(b.data[b.gapEnd:b.Extent()])
	return int64(n1 + n2), err
}
