package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ayed/internal/input/key"
)

// specialKeys maps tcell keys to the navigation and editing codes the
// keymaps bind.
var specialKeys = map[tcell.Key]key.Code{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// ConvertKey translates a tcell key event. It reports false for keys
// the editor has no code for, such as function keys.
func ConvertKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		e := key.NewRuneEvent(ev.Rune(), mods)
		e.Timestamp = ev.When()
		return e, true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		e := key.NewRuneEvent(rune('a'+k-tcell.KeyCtrlA), mods|key.ModCtrl)
		e.Timestamp = ev.When()
		return e, true

	case k == tcell.KeyCtrlSpace:
		e := key.NewRuneEvent(' ', mods|key.ModCtrl)
		e.Timestamp = ev.When()
		return e, true
	}

	code, ok := specialKeys[k]
	if !ok {
		return key.Event{}, false
	}
	e := key.NewSpecialEvent(code, mods)
	e.Timestamp = ev.When()
	return e, true
}

// convertMod converts a tcell modifier mask. Meta folds onto Alt.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= key.ModAlt
	}
	return result
}
