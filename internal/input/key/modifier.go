package key

import "strings"

// Modifier represents keyboard modifier keys. The bits sit above the base
// code so a Modifier can be or-ed straight into a Combo.
type Modifier uint16

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << 8

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt Modifier = 1 << 9

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << 10
)

const modMask = ModCtrl | ModAlt | ModShift

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// ModifierFromName returns the modifier for a name like "ctrl" or "c".
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "ctrl", "control", "c":
		return ModCtrl
	case "alt", "option", "opt", "a", "m", "meta":
		return ModAlt
	case "shift", "s":
		return ModShift
	default:
		return ModNone
	}
}
