package keymap

import (
	"github.com/dshills/ayed/internal/input/key"
	"github.com/dshills/ayed/internal/input/mode"
)

// Keymap is a total mapping from every key combination to an action for
// one mode. Combinations that were never bound map to Nop.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to.
	Mode mode.Mode

	// Source indicates where the most recent bindings came from.
	// Examples: "default", "config", "script"
	Source string

	table [key.MaxCombos]Action
}

// NewKeymap creates an empty keymap for m.
func NewKeymap(name string, m mode.Mode) *Keymap {
	return &Keymap{Name: name, Mode: m}
}

// Lookup returns the action bound to c, or Nop.
func (k *Keymap) Lookup(c key.Combo) Action {
	if int(c) >= key.MaxCombos {
		return Nop
	}
	return k.table[c]
}

// Bind maps c to a. Binding Nop is the same as Unbind.
func (k *Keymap) Bind(c key.Combo, a Action) *Keymap {
	if int(c) < key.MaxCombos {
		k.table[c] = a
	}
	return k
}

// BindAll maps each combo to a.
func (k *Keymap) BindAll(a Action, combos ...key.Combo) *Keymap {
	for _, c := range combos {
		k.Bind(c, a)
	}
	return k
}

// Unbind resets c to Nop.
func (k *Keymap) Unbind(c key.Combo) *Keymap {
	return k.Bind(c, Nop)
}

// Bindings returns every non-Nop binding in combo order.
func (k *Keymap) Bindings() []Binding {
	var out []Binding
	for c, a := range k.table {
		if a != Nop {
			out = append(out, Binding{Combo: key.Combo(c), Action: a})
		}
	}
	return out
}

// Len returns the number of bound combinations.
func (k *Keymap) Len() int {
	n := 0
	for _, a := range k.table {
		if a != Nop {
			n++
		}
	}
	return n
}

// Clone creates a copy that can be modified independently.
func (k *Keymap) Clone() *Keymap {
	clone := *k
	return &clone
}
