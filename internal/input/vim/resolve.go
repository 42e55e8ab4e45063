package vim

import (
	"github.com/dshills/ayed/internal/input/keymap"
)

// Status is the result of resolving a pending sequence.
type Status uint8

const (
	// StatusPending indicates more input is needed.
	StatusPending Status = iota

	// StatusComplete indicates the sequence names a command.
	StatusComplete

	// StatusInvalid indicates no command can start with the sequence.
	StatusInvalid
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

var singles = map[byte]keymap.Action{
	'x': keymap.DeleteChar,
	'h': keymap.NormalCursorBack,
	'j': keymap.CursorDown,
	'k': keymap.CursorUp,
	'l': keymap.NormalCursorNext,
	'w': keymap.GoWordNext,
	'e': keymap.GoWordEnd,
	'b': keymap.GoWordPrev,
	'y': keymap.YankLine,
	'p': keymap.Paste,
	'i': keymap.InsertMode,
	'a': keymap.InsertModeNext,
	'I': keymap.InsertBeginningOfLine,
	'A': keymap.InsertEndOfLine,
	'o': keymap.NewLineAfter,
	'O': keymap.NewLineBefore,
	'v': keymap.VisualMode,
	'V': keymap.VisualModeLine,
	'G': keymap.GotoBufferEnd,
	'{': keymap.SkipParagraphUp,
	'}': keymap.SkipParagraphDown,
	'$': keymap.GotoLineEnd,
}

var doubles = map[[2]byte]keymap.Action{
	{'g', 'g'}: keymap.GotoBufferBegin,
	{'d', 'd'}: keymap.DeleteLine,
	{'d', 'w'}: keymap.DeleteWord,
	{'c', 'w'}: keymap.ChangeWord,
}

// prefixes are the first characters that wait for a second one.
var prefixes = func() map[byte]bool {
	m := map[byte]bool{CtrlMarker: true}
	for k := range doubles {
		m[k[0]] = true
	}
	return m
}()

// Resolve matches the pending bytes against the normal mode grammar.
//
// A single character resolves at once unless it starts a two character
// command. Two character commands resolve once both are present. Sequences
// starting with a digit never match. Everything else is invalid.
func Resolve(seq []byte) (keymap.Action, Status) {
	switch len(seq) {
	case 0:
		return keymap.Nop, StatusPending
	case 1:
		c := seq[0]
		if prefixes[c] {
			return keymap.Nop, StatusPending
		}
		if a, ok := singles[c]; ok {
			return a, StatusComplete
		}
		return keymap.Nop, StatusInvalid
	case 2:
		if isDigit(seq[0]) {
			return keymap.Nop, StatusInvalid
		}
		if a, ok := doubles[[2]byte{seq[0], seq[1]}]; ok {
			return a, StatusComplete
		}
		return keymap.Nop, StatusInvalid
	default:
		return keymap.Nop, StatusInvalid
	}
}

// Commands returns every resolvable sequence with its action.
func Commands() map[string]keymap.Action {
	out := make(map[string]keymap.Action, len(singles)+len(doubles))
	for c, a := range singles {
		out[string(c)] = a
	}
	for k, a := range doubles {
		out[string(k[:])] = a
	}
	return out
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
