package key

import (
	"fmt"
	"strings"
)

// Code is the base key code of a combo, in the range [0, 0xFF].
type Code uint16

// Special key codes. Printable ASCII characters use their own byte value.
const (
	KeyNone      Code = 0x00
	KeyBackspace Code = 0x08
	KeyTab       Code = 0x09
	KeyEnter     Code = 0x0D
	KeyEscape    Code = 0x1B
	KeySpace     Code = 0x20
	KeyDelete    Code = 0x7F
)

// Navigation keys live above ASCII.
const (
	KeyLeft Code = 0x80 + iota
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

const (
	// KeyUnicode stands for any rune outside ASCII. The rune itself travels
	// in Event.Rune.
	KeyUnicode Code = 0xFF
)

const codeMask = 0xFF

var keyNames = map[Code]string{
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeySpace:     "Space",
	KeyDelete:    "Delete",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUnicode:   "Unicode",
}

var namedKeys = map[string]Code{
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"cr":        KeyEnter,
	"return":    KeyEnter,
	"enter":     KeyEnter,
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"space":     KeySpace,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"left":      KeyLeft,
	"right":     KeyRight,
	"up":        KeyUp,
	"down":      KeyDown,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"unicode":   KeyUnicode,
	"lt":        '<',
	"gt":        '>',
	"bar":       '|',
	"bslash":    '\\',
	"minus":     '-',
	"plus":      '+',
}

// KeyFromName returns the code for a key name, or KeyNone.
// Names are case-insensitive.
func KeyFromName(name string) Code {
	return namedKeys[strings.ToLower(name)]
}

// IsSpecial reports whether c is not a printable character.
func (c Code) IsSpecial() bool {
	return c < KeySpace || c > '~'
}

// IsLetter reports whether c is one of the folded letter codes 'A'..'Z'.
func (c Code) IsLetter() bool {
	return c >= 'A' && c <= 'Z'
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	if name, ok := keyNames[c]; ok {
		return name
	}
	if c.IsLetter() {
		return string(rune(c + 'a' - 'A'))
	}
	if !c.IsSpecial() {
		return string(rune(c))
	}
	return fmt.Sprintf("Key(%#02x)", uint16(c))
}

// Combo is a base code with modifier bits, below MaxCombos.
type Combo uint16

// MaxCombos is the number of distinct combos.
const MaxCombos = 1 << 11

// NewCombo builds a combo from a base code and modifiers.
func NewCombo(code Code, mods Modifier) Combo {
	return Combo(uint16(code)&codeMask | uint16(mods&modMask))
}

// RuneCombo returns the combo for a typed rune. Letters fold to their
// upper-case code, and upper-case letters gain Shift. Runes outside ASCII
// map to KeyUnicode.
func RuneCombo(r rune, mods Modifier) Combo {
	switch {
	case r >= 'a' && r <= 'z':
		return NewCombo(Code(r-'a'+'A'), mods)
	case r >= 'A' && r <= 'Z':
		return NewCombo(Code(r), mods|ModShift)
	case r >= ' ' && r <= '~':
		return NewCombo(Code(r), mods)
	case r == '\t':
		return NewCombo(KeyTab, mods)
	case r == '\r' || r == '\n':
		return NewCombo(KeyEnter, mods)
	default:
		return NewCombo(KeyUnicode, mods)
	}
}

// Code returns the base code.
func (c Combo) Code() Code {
	return Code(c & codeMask)
}

// Modifiers returns the modifier bits.
func (c Combo) Modifiers() Modifier {
	return Modifier(c) & modMask
}

// String returns a canonical specification that ParseCombo accepts.
func (c Combo) String() string {
	code, mods := c.Code(), c.Modifiers()
	if code.IsLetter() && mods == ModShift {
		return string(rune(code))
	}
	if mods == ModNone {
		return code.String()
	}
	return mods.String() + "+" + code.String()
}
