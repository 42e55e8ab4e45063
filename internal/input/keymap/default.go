package keymap

import (
	"github.com/dshills/ayed/internal/input/key"
	"github.com/dshills/ayed/internal/input/mode"
)

// Defaults returns a fresh set of default keymaps indexed by mode.
func Defaults() [mode.Count]*Keymap {
	var out [mode.Count]*Keymap
	out[mode.Insert] = DefaultInsertKeymap()
	out[mode.Normal] = DefaultNormalKeymap()
	out[mode.Visual] = DefaultVisualKeymap()
	out[mode.VisualLine] = DefaultVisualLineKeymap()
	return out
}

// printable calls fn with the plain and shifted combo of every printable
// ASCII key code.
func printable(fn func(key.Combo)) {
	for ch := key.Code(' '); ch <= '~'; ch++ {
		if ch >= 'a' && ch <= 'z' {
			// folded onto 'A'..'Z'
			continue
		}
		fn(key.NewCombo(ch, key.ModNone))
		fn(key.NewCombo(ch, key.ModShift))
	}
}

// DefaultInsertKeymap returns default insert mode bindings.
func DefaultInsertKeymap() *Keymap {
	km := NewKeymap("default-insert", mode.Insert)
	km.Source = "default"

	printable(func(c key.Combo) { km.Bind(c, InsertChar) })
	km.BindAll(InsertChar,
		key.NewCombo(key.KeyUnicode, key.ModNone),
		key.NewCombo(key.KeyUnicode, key.ModShift),
	)

	km.BindAll(InsertNewLine,
		key.NewCombo(key.KeyEnter, key.ModNone),
		key.NewCombo(key.KeyEnter, key.ModShift),
	)
	km.Bind(key.NewCombo(key.KeyTab, key.ModNone), InsertTab)
	km.BindAll(DeleteBackwards,
		key.NewCombo(key.KeyBackspace, key.ModNone),
		key.NewCombo(key.KeyBackspace, key.ModShift),
	)
	km.Bind(key.NewCombo(key.KeyDelete, key.ModNone), DeleteForwards)
	km.Bind(key.NewCombo(key.KeyEscape, key.ModNone), NormalMode)

	bindArrows(km)
	km.Bind(key.NewCombo(key.KeyHome, key.ModNone), GotoLineBegin)
	km.Bind(key.NewCombo(key.KeyEnd, key.ModNone), GotoLineEnd)
	km.Bind(key.NewCombo(key.KeyPageUp, key.ModNone), PageUp)
	km.Bind(key.NewCombo(key.KeyPageDown, key.ModNone), PageDown)
	return km
}

// DefaultNormalKeymap returns default normal mode bindings. Every
// printable key feeds the pending sequence, which resolves the command.
func DefaultNormalKeymap() *Keymap {
	km := NewKeymap("default-normal", mode.Normal)
	km.Source = "default"

	printable(func(c key.Combo) { km.Bind(c, NormalHandle) })
	for ch := key.Code(' '); ch <= '~'; ch++ {
		if ch < 'a' || ch > 'z' {
			km.Bind(key.NewCombo(ch, key.ModCtrl), NormalHandle)
		}
	}
	km.Bind(key.NewCombo(key.KeyEscape, key.ModNone), NormalClear)

	km.Bind(key.NewCombo(key.KeyLeft, key.ModNone), NormalCursorBack)
	km.Bind(key.NewCombo(key.KeyRight, key.ModNone), NormalCursorNext)
	km.Bind(key.NewCombo(key.KeyUp, key.ModNone), CursorUp)
	km.Bind(key.NewCombo(key.KeyDown, key.ModNone), CursorDown)
	km.Bind(key.NewCombo(key.KeyPageUp, key.ModNone), PageUp)
	km.Bind(key.NewCombo(key.KeyPageDown, key.ModNone), PageDown)
	return km
}

// DefaultVisualKeymap returns default characterwise visual bindings.
func DefaultVisualKeymap() *Keymap {
	km := NewKeymap("default-visual", mode.Visual)
	km.Source = "default"

	km.Bind(key.RuneCombo('l', 0), NormalCursorNext)
	km.Bind(key.RuneCombo('h', 0), NormalCursorBack)
	km.Bind(key.RuneCombo('j', 0), CursorDown)
	km.Bind(key.RuneCombo('k', 0), CursorUp)
	km.Bind(key.RuneCombo('d', 0), VisualDelete)
	km.Bind(key.RuneCombo('y', 0), VisualYank)
	km.Bind(key.RuneCombo('w', 0), GoWordNext)
	km.Bind(key.RuneCombo('e', 0), GoWordEnd)
	km.Bind(key.RuneCombo('b', 0), GoWordPrev)
	km.Bind(key.RuneCombo('g', 0), GotoBufferBegin)
	km.Bind(key.RuneCombo('G', 0), GotoBufferEnd)
	km.Bind(key.RuneCombo('$', 0), GotoLineEnd)
	km.Bind(key.RuneCombo('v', 0), NormalMode)
	km.Bind(key.RuneCombo('V', 0), VisualModeLine)
	km.Bind(key.NewCombo(key.KeyEscape, key.ModNone), NormalMode)

	km.Bind(key.NewCombo(key.KeyLeft, key.ModNone), NormalCursorBack)
	km.Bind(key.NewCombo(key.KeyRight, key.ModNone), NormalCursorNext)
	km.Bind(key.NewCombo(key.KeyUp, key.ModNone), CursorUp)
	km.Bind(key.NewCombo(key.KeyDown, key.ModNone), CursorDown)
	return km
}

// DefaultVisualLineKeymap returns default linewise visual bindings.
func DefaultVisualLineKeymap() *Keymap {
	km := NewKeymap("default-visual-line", mode.VisualLine)
	km.Source = "default"

	km.Bind(key.RuneCombo('j', 0), VisualLineDown)
	km.Bind(key.RuneCombo('k', 0), VisualLineUp)
	km.Bind(key.RuneCombo('d', 0), VisualDelete)
	km.Bind(key.RuneCombo('y', 0), VisualYank)
	km.Bind(key.RuneCombo('g', 0), VisualLineBufferBegin)
	km.Bind(key.RuneCombo('G', 0), VisualLineBufferEnd)
	km.Bind(key.RuneCombo('v', 0), VisualMode)
	km.Bind(key.RuneCombo('V', 0), NormalMode)
	km.Bind(key.NewCombo(key.KeyEscape, key.ModNone), NormalMode)

	km.Bind(key.NewCombo(key.KeyUp, key.ModNone), VisualLineUp)
	km.Bind(key.NewCombo(key.KeyDown, key.ModNone), VisualLineDown)
	return km
}

func bindArrows(km *Keymap) {
	km.Bind(key.NewCombo(key.KeyLeft, key.ModNone), CursorLeft)
	km.Bind(key.NewCombo(key.KeyRight, key.ModNone), CursorRight)
	km.Bind(key.NewCombo(key.KeyUp, key.ModNone), CursorUp)
	km.Bind(key.NewCombo(key.KeyDown, key.ModNone), CursorDown)
}
