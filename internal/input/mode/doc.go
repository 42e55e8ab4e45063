// Package mode defines the editor's modes and the state machine that moves
// between them.
//
// The modes are:
//   - Insert: text input (the initial mode unless configured otherwise)
//   - Normal: navigation and single- or double-key commands
//   - Visual: character-wise selection
//   - VisualLine: line-wise selection
//
// Transitions are driven by bound actions, for example Escape returns to
// Normal and "i", "a", "o" enter Insert. The Manager records the active and
// previous mode and notifies callbacks so the front-end can change the
// cursor style:
//
//	m := mode.NewManager(mode.Insert)
//	m.OnChange(func(from, to mode.Mode) {
//	    screen.SetCursorStyle(to.CursorStyle())
//	})
//	m.Switch(mode.Normal)
package mode
