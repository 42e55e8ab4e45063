// Package editor implements modal dispatch over a single pane.
//
// An Editor owns a mode (Insert, Normal, Visual or VisualLine), one keymap
// per mode, the normal mode pending sequence, and the registers. Each key
// event is looked up in the active mode's keymap and the bound action runs
// against the pane:
//
//	buf := buffer.New(1 << 20)
//	p := pane.New(buf, 80, 24)
//	ed := editor.New(p, editor.WithListener(highlighter))
//	ed.Dispatch(key.NewRuneEvent('x', key.ModNone))
//
// Every buffer mutation is reported to the registered EditListeners as a
// buffer.Edit, exactly once, after the buffer has changed.
//
// Buffer failures, such as a full buffer, are logged and absorbed: the
// action stops and the buffer is left as it was.
package editor
