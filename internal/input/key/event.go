package key

import (
	"fmt"
	"time"
)

// Kind distinguishes presses from releases.
type Kind uint8

const (
	// Pressed is a key going down or auto-repeating.
	Pressed Kind = iota
	// Released is a key coming up. Released events never dispatch.
	Released
)

// String returns "pressed" or "released".
func (k Kind) String() string {
	if k == Released {
		return "released"
	}
	return "pressed"
}

// Event represents a single key event.
type Event struct {
	// Combo is the base code plus modifiers used for keymap lookup.
	Combo Combo

	// Rune is the character that produced the event, 0 for special keys.
	Rune rune

	// Kind is pressed or released.
	Kind Kind

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a pressed event for a typed character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Combo:     RuneCombo(r, mods),
		Rune:      r,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a pressed event for a special key.
func NewSpecialEvent(code Code, mods Modifier) Event {
	var r rune
	switch code {
	case KeyTab:
		r = '\t'
	case KeyEnter:
		r = '\n'
	case KeySpace:
		r = ' '
	}
	return Event{
		Combo:     NewCombo(code, mods),
		Rune:      r,
		Timestamp: time.Now(),
	}
}

// Release returns the same event as a release.
func (e Event) Release() Event {
	e.Kind = Released
	return e
}

// IsPressed reports whether the event should dispatch.
func (e Event) IsPressed() bool {
	return e.Kind == Pressed
}

// Modifiers returns the modifier bits of the combo.
func (e Event) Modifiers() Modifier {
	return e.Combo.Modifiers()
}

// String returns the combo and kind, e.g. "Ctrl+s pressed".
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Combo, e.Kind)
}
