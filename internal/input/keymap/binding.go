package keymap

import (
	"fmt"

	"github.com/dshills/ayed/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	Combo  key.Combo
	Action Action
}

// NewBinding parses keys and action names into a Binding.
func NewBinding(keys, action string) (Binding, error) {
	c, err := key.ParseCombo(keys)
	if err != nil {
		return Binding{}, err
	}
	a, err := ParseAction(action)
	if err != nil {
		return Binding{}, err
	}
	return Binding{Combo: c, Action: a}, nil
}

// String returns "combo -> action".
func (b Binding) String() string {
	return fmt.Sprintf("%s -> %s", b.Combo, b.Action)
}

// GroupByCategory groups bindings by their action's category.
func GroupByCategory(bindings []Binding) map[string][]Binding {
	groups := make(map[string][]Binding)
	for _, b := range bindings {
		cat := b.Action.Category()
		if cat == "" {
			cat = "Other"
		}
		groups[cat] = append(groups[cat], b)
	}
	return groups
}
