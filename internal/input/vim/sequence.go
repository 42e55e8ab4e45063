package vim

import "github.com/dshills/ayed/internal/input/key"

// MaxPending is the capacity of a pending sequence in bytes.
const MaxPending = 8

// CtrlMarker precedes a character that was typed with Ctrl held.
const CtrlMarker = '^'

// Sequence accumulates the raw characters of a normal mode command that has
// not resolved yet. It never grows beyond MaxPending bytes.
type Sequence struct {
	buf [MaxPending]byte
	n   int
}

// Push appends ch, preceded by CtrlMarker when ctrl is set. An append that
// would overflow is rejected and leaves the sequence unchanged.
func (s *Sequence) Push(ch byte, ctrl bool) bool {
	need := 1
	if ctrl {
		need = 2
	}
	if s.n+need > MaxPending {
		return false
	}
	if ctrl {
		s.buf[s.n] = CtrlMarker
		s.n++
	}
	s.buf[s.n] = ch
	s.n++
	return true
}

// PushEvent appends the character carried by ev. Events without an ASCII
// character are rejected.
func (s *Sequence) PushEvent(ev key.Event) bool {
	ch, ok := eventChar(ev)
	if !ok {
		return false
	}
	return s.Push(ch, ev.Modifiers().HasCtrl())
}

// eventChar recovers the typed character of ev. Ctrl combos often arrive
// without a rune, so the combo's base code is used instead.
func eventChar(ev key.Event) (byte, bool) {
	if ev.Rune > 0 && ev.Rune < 0x80 && ev.Rune >= ' ' {
		return byte(ev.Rune), true
	}
	code := ev.Combo.Code()
	if code.IsSpecial() {
		return 0, false
	}
	if code.IsLetter() && !ev.Modifiers().HasShift() {
		return byte(code) + 'a' - 'A', true
	}
	return byte(code), true
}

// Len returns the number of pending bytes.
func (s *Sequence) Len() int {
	return s.n
}

// IsEmpty reports whether nothing is pending.
func (s *Sequence) IsEmpty() bool {
	return s.n == 0
}

// Bytes returns the pending bytes. The slice is only valid until the next
// Push or Clear.
func (s *Sequence) Bytes() []byte {
	return s.buf[:s.n]
}

// String returns the pending characters, shown in the status line.
func (s *Sequence) String() string {
	return string(s.buf[:s.n])
}

// Clear drops everything pending.
func (s *Sequence) Clear() {
	s.n = 0
}
