package keymap

import (
	"fmt"

	"github.com/dshills/ayed/internal/input/key"
	"github.com/dshills/ayed/internal/input/mode"
)

// Registry holds one keymap per mode and provides binding lookup.
type Registry struct {
	keymaps [mode.Count]*Keymap
}

// NewRegistry creates a registry loaded with the default keymaps.
func NewRegistry() *Registry {
	return &Registry{keymaps: Defaults()}
}

// NewRegistryFrom creates a registry from existing keymaps. Nil entries are
// replaced with empty keymaps so every mode has a table.
func NewRegistryFrom(keymaps [mode.Count]*Keymap) *Registry {
	r := &Registry{keymaps: keymaps}
	for m, km := range r.keymaps {
		if km == nil {
			r.keymaps[m] = NewKeymap("empty-"+mode.Mode(m).String(), mode.Mode(m))
		}
	}
	return r
}

// For returns the keymap for m.
func (r *Registry) For(m mode.Mode) *Keymap {
	if !m.Valid() {
		return nil
	}
	return r.keymaps[m]
}

// Lookup returns the action bound to c in mode m.
func (r *Registry) Lookup(m mode.Mode, c key.Combo) Action {
	km := r.For(m)
	if km == nil {
		return Nop
	}
	return km.Lookup(c)
}

// Bind binds c to a in mode m.
func (r *Registry) Bind(m mode.Mode, c key.Combo, a Action) error {
	km := r.For(m)
	if km == nil {
		return fmt.Errorf("%w: %d", ErrUnknownMode, m)
	}
	km.Bind(c, a)
	return nil
}

// Replace installs km as the keymap for its mode.
func (r *Registry) Replace(km *Keymap) error {
	if km == nil || !km.Mode.Valid() {
		return ErrUnknownMode
	}
	r.keymaps[km.Mode] = km
	return nil
}

// Clone returns a deep copy of the registry.
func (r *Registry) Clone() *Registry {
	c := &Registry{}
	for m, km := range r.keymaps {
		c.keymaps[m] = km.Clone()
	}
	return c
}

// Stats returns the number of bindings per mode.
func (r *Registry) Stats() map[mode.Mode]int {
	stats := make(map[mode.Mode]int, mode.Count)
	for m, km := range r.keymaps {
		stats[mode.Mode(m)] = km.Len()
	}
	return stats
}
