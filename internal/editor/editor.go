package editor

import (
	"fmt"
	"time"

	"github.com/dshills/ayed/internal/engine/buffer"
	"github.com/dshills/ayed/internal/input/key"
	"github.com/dshills/ayed/internal/input/keymap"
	"github.com/dshills/ayed/internal/input/mode"
	"github.com/dshills/ayed/internal/input/vim"
	"github.com/dshills/ayed/internal/logging"
	"github.com/dshills/ayed/internal/pane"
)

// Editor is the modal state machine driving one pane. It is not safe for
// concurrent use; a single event loop owns it.
type Editor struct {
	modes     *mode.Manager
	keymaps   *keymap.Registry
	pane      *pane.Pane
	pending   vim.Sequence
	registers *vim.RegisterStore
	listeners []EditListener
	last      key.Event
	lastErr   error

	logger  *logging.Logger
	metrics *Metrics

	initial    mode.Mode
	autoIndent bool
}

// New creates an editor for p. Without options it starts in Insert mode
// with the default keymaps and auto-indent enabled.
func New(p *pane.Pane, opts ...Option) *Editor {
	e := &Editor{
		pane:       p,
		registers:  vim.NewRegisterStore(),
		logger:     logging.Discard(),
		metrics:    NewMetrics(),
		initial:    mode.Insert,
		autoIndent: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.keymaps == nil {
		e.keymaps = keymap.NewRegistry()
	}

	e.modes = mode.NewManager(e.initial)
	e.modes.OnChange(func(from, to mode.Mode) {
		e.logger.Debug("mode %s -> %s", from, to)
	})
	return e
}

// Mode returns the active mode.
func (e *Editor) Mode() mode.Mode {
	return e.modes.Current()
}

// Modes returns the mode manager, for observers that need transition
// callbacks.
func (e *Editor) Modes() *mode.Manager {
	return e.modes
}

// Pane returns the pane being edited.
func (e *Editor) Pane() *pane.Pane {
	return e.pane
}

// Buffer returns the pane's buffer.
func (e *Editor) Buffer() *buffer.GapBuffer {
	return e.pane.Buffer()
}

// Keymaps returns the keymap registry.
func (e *Editor) Keymaps() *keymap.Registry {
	return e.keymaps
}

// SetKeymaps replaces the keymap registry.
func (e *Editor) SetKeymaps(r *keymap.Registry) {
	if r != nil {
		e.keymaps = r
	}
}

// Registers returns the register store shared by yank, delete and paste.
func (e *Editor) Registers() *vim.RegisterStore {
	return e.registers
}

// Metrics returns the editor's counters.
func (e *Editor) Metrics() *Metrics {
	return e.metrics
}

// Pending returns the unresolved normal mode keys.
func (e *Editor) Pending() string {
	return e.pending.String()
}

// LastEvent returns the most recent pressed key event.
func (e *Editor) LastEvent() key.Event {
	return e.last
}

// LastError returns the buffer error absorbed by the most recent Dispatch
// or Execute, or nil.
func (e *Editor) LastError() error {
	return e.lastErr
}

// AutoIndent reports whether new lines copy indentation and closing braces
// dedent.
func (e *Editor) AutoIndent() bool {
	return e.autoIndent
}

// SetAutoIndent toggles auto-indentation.
func (e *Editor) SetAutoIndent(on bool) {
	e.autoIndent = on
}

// AddListener registers l for edit notifications.
func (e *Editor) AddListener(l EditListener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

// Dispatch handles one key event: the active mode's keymap resolves the
// combo to an action, which runs against the pane. Released events and
// unbound combos do nothing.
func (e *Editor) Dispatch(ev key.Event) {
	if !ev.IsPressed() {
		return
	}
	start := time.Now()
	e.last = ev
	e.lastErr = nil

	a := e.keymaps.Lookup(e.modes.Current(), ev.Combo)
	e.run(a)
	e.metrics.RecordKeyEvent(time.Since(start))
}

// Execute runs a directly, as if it had been bound to the last key.
func (e *Editor) Execute(a keymap.Action) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %s", keymap.ErrUnknownAction, a)
	}
	e.lastErr = nil
	e.run(a)
	return nil
}

// ExecuteName runs the action with the given name.
func (e *Editor) ExecuteName(name string) error {
	a, err := keymap.ParseAction(name)
	if err != nil {
		return err
	}
	return e.Execute(a)
}

// SetMode switches to m. Entering Normal mode drops any pending keys.
func (e *Editor) SetMode(m mode.Mode) {
	if !m.Valid() {
		return
	}
	if m == mode.Normal {
		e.pending.Clear()
	}
	e.modes.Switch(m)
}

// run executes a single action.
func (e *Editor) run(a keymap.Action) {
	if a == keymap.Nop {
		return
	}
	e.metrics.RecordAction()

	switch a {
	// insert.go
	case keymap.InsertChar:
		e.insertChar(e.last.Rune)
	case keymap.InsertNewLine:
		e.insertNewLine()
	case keymap.InsertTab:
		e.insertTab()

	// delete.go
	case keymap.DeleteBackwards:
		e.deleteBackwards()
	case keymap.DeleteForwards, keymap.DeleteChar:
		e.deleteForwards()
	case keymap.DeleteLine:
		e.deleteLine()
	case keymap.DeleteWord:
		e.deleteWord()
	case keymap.ChangeWord:
		e.changeWord()

	// motion.go
	case keymap.CursorLeft:
		e.pane.CursorLeft()
	case keymap.CursorRight:
		e.pane.CursorRight()
	case keymap.CursorUp, keymap.VisualLineUp:
		e.pane.CursorUp()
	case keymap.CursorDown, keymap.VisualLineDown:
		e.pane.CursorDown()
	case keymap.GotoLineBegin:
		e.gotoLineBegin()
	case keymap.GotoLineEnd:
		e.gotoLineEnd()
	case keymap.PageUp:
		e.pageUp()
	case keymap.PageDown:
		e.pageDown()
	case keymap.NormalCursorBack:
		e.normalCursorBack()
	case keymap.NormalCursorNext:
		e.normalCursorNext()
	case keymap.GoWordNext:
		e.goWordNext()
	case keymap.GoWordEnd:
		e.goWordEnd()
	case keymap.GoWordPrev:
		e.goWordPrev()
	case keymap.GotoBufferBegin, keymap.VisualLineBufferBegin:
		e.pane.SetCursor(0)
	case keymap.GotoBufferEnd, keymap.VisualLineBufferEnd:
		e.pane.SetCursor(e.Buffer().Len())
	case keymap.SkipParagraphUp:
		e.skipParagraphUp()
	case keymap.SkipParagraphDown:
		e.skipParagraphDown()

	// mode.go
	case keymap.NormalMode:
		e.SetMode(mode.Normal)
	case keymap.NormalHandle:
		e.normalHandle()
	case keymap.NormalClear:
		e.pending.Clear()
	case keymap.InsertMode:
		e.SetMode(mode.Insert)
	case keymap.InsertModeNext:
		e.insertModeNext()
	case keymap.InsertBeginningOfLine:
		e.insertBeginningOfLine()
	case keymap.InsertEndOfLine:
		e.insertEndOfLine()
	case keymap.NewLineAfter:
		e.newLineAfter()
	case keymap.NewLineBefore:
		e.newLineBefore()

	// visual.go
	case keymap.VisualMode:
		e.visualMode(mode.Visual)
	case keymap.VisualModeLine:
		e.visualMode(mode.VisualLine)
	case keymap.VisualDelete:
		e.visualDelete()
	case keymap.VisualYank:
		e.visualYank()

	// yank.go
	case keymap.YankLine:
		e.yankLine()
	case keymap.Paste:
		e.paste()

	default:
		e.logger.Debug("unhandled action %s", a)
	}
}

// String returns a short description for logs.
func (e *Editor) String() string {
	return fmt.Sprintf("editor %s %s", e.Mode(), e.pane)
}
