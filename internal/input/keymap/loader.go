package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/ayed/internal/input/key"
	"github.com/dshills/ayed/internal/input/mode"
)

// Loader errors
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownMode   = errors.New("unknown mode")
)

// Overrides maps mode names to key specifications to action names, the
// shape of the [keymap.<mode>] tables in the config file.
type Overrides map[string]map[string]string

// OverrideError describes a single override entry that could not be applied.
type OverrideError struct {
	Mode   string
	Keys   string
	Action string
	Err    error
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("keymap.%s %q = %q: %v", e.Mode, e.Keys, e.Action, e.Err)
}

func (e *OverrideError) Unwrap() error {
	return e.Err
}

// ApplyOverrides binds every entry of o into r. Valid entries are applied
// even when others fail; all failures are returned joined. Entries are
// applied in sorted order so the result is deterministic.
func (r *Registry) ApplyOverrides(o Overrides, source string) error {
	var errs []error

	modes := make([]string, 0, len(o))
	for name := range o {
		modes = append(modes, name)
	}
	sort.Strings(modes)

	for _, name := range modes {
		m, err := mode.Parse(name)
		if err != nil {
			errs = append(errs, &OverrideError{Mode: name, Err: fmt.Errorf("%w: %v", ErrUnknownMode, err)})
			continue
		}
		km := r.For(m)

		specs := make([]string, 0, len(o[name]))
		for spec := range o[name] {
			specs = append(specs, spec)
		}
		sort.Strings(specs)

		for _, spec := range specs {
			actionName := o[name][spec]
			c, err := key.ParseCombo(spec)
			if err != nil {
				errs = append(errs, &OverrideError{Mode: name, Keys: spec, Action: actionName, Err: err})
				continue
			}
			a, err := ParseAction(actionName)
			if err != nil {
				errs = append(errs, &OverrideError{Mode: name, Keys: spec, Action: actionName, Err: err})
				continue
			}
			km.Bind(c, a)
			if source != "" {
				km.Source = source
			}
		}
	}

	return errors.Join(errs...)
}
