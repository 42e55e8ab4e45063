package app

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ayed/internal/config"
	"github.com/dshills/ayed/internal/engine/buffer"
	"github.com/dshills/ayed/internal/engine/cursor"
	"github.com/dshills/ayed/internal/input/key"
	"github.com/dshills/ayed/internal/input/mode"
	"github.com/dshills/ayed/internal/terminal"
)

// Application key bindings, handled before the editor sees the event.
var (
	QuitCombo = key.RuneCombo('q', key.ModCtrl)
	SaveCombo = key.RuneCombo('s', key.ModCtrl)
)

// pollEvents forwards terminal events until the screen is shut down or
// the application stops.
func (a *Application) pollEvents() {
	for {
		ev := a.term.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

// eventLoop is the single goroutine that owns the editor.
func (a *Application) eventLoop(ctx context.Context) error {
	var (
		updates <-chan *config.Config
		errs    <-chan error
	)
	if a.watcher != nil {
		updates = a.watcher.Updates()
		errs = a.watcher.Errors()
	}

	a.redraw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-a.done:
			return ErrQuit

		case ev := <-a.events:
			if err := a.handleEvent(ev); err != nil {
				return err
			}

		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			a.applyConfig(cfg)
			a.message = "config reloaded"

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			a.logger.Warn("config: %v", err)
			a.message = "config error, keeping previous settings"
		}
		a.redraw()
	}
}

// handleEvent processes one terminal event. It returns ErrQuit when the
// user asks to leave.
func (a *Application) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.resize(w, h)
		a.term.Sync()

	case *tcell.EventKey:
		k, ok := terminal.ConvertKey(ev)
		if !ok {
			return nil
		}
		return a.handleKey(k)
	}
	return nil
}

func (a *Application) handleKey(k key.Event) error {
	a.message = ""

	switch k.Combo {
	case QuitCombo:
		a.logger.Info("quit requested")
		return ErrQuit
	case SaveCombo:
		a.save()
		return nil
	}

	a.editor.Dispatch(k)
	if errors.Is(a.editor.LastError(), buffer.ErrCapacityExceeded) {
		a.message = "buffer full"
		a.term.Beep()
	}
	return nil
}

// save writes the buffer to the file named at startup.
func (a *Application) save() {
	if err := a.Save(); err != nil {
		a.logger.ErrorErr("save", err)
		a.message = err.Error()
		return
	}
	a.message = "written " + a.opts.File
}

// Save writes the buffer's bytes to the file it was opened from.
func (a *Application) Save() error {
	if a.opts.File == "" {
		return NewOperationError("save", "", ErrNoFileName)
	}
	if err := writeFile(a.opts.File, a.buf); err != nil {
		return NewOperationError("save", a.opts.File, err)
	}
	a.logger.Info("saved %s (%d bytes)", a.opts.File, a.buf.Len())
	return nil
}

// resize fits the pane to the screen, keeping the last row for the status
// line.
func (a *Application) resize(w, h int) {
	rows := h - 1
	if rows < 1 {
		rows = 1
	}
	a.pane.Resize(w, rows)
	a.logger.Debug("resize %dx%d", w, h)
}

func (a *Application) redraw() {
	a.pane.UpdateScroll()

	var sel cursor.Selection
	m := a.editor.Mode()
	if m.IsVisual() {
		sel = a.pane.Selection(m == mode.VisualLine)
	}

	a.term.Draw(a.pane, sel, terminal.Status{
		Mode:    m,
		Name:    a.opts.File,
		Pending: a.editor.Pending(),
		Line:    a.pane.CursorLine(),
		Column:  a.pane.CursorColumn(),
		Message: a.message,
	})
}

// applyConfig makes a reloaded configuration live. Command line flags
// still win over the file. Buffer capacity, gap size and initial mode only
// take effect at startup.
func (a *Application) applyConfig(cfg *config.Config) {
	applyFlags(cfg, a.opts)
	a.pane.SetTabWidth(cfg.Editor.TabWidth)
	a.editor.SetAutoIndent(cfg.Editor.AutoIndent)
	a.editor.SetKeymaps(a.buildKeymaps(cfg))
	a.logger.SetLevel(cfg.LogLevel())

	if cfg.Editor.Capacity != a.cfg.Editor.Capacity || cfg.Editor.GapSize != a.cfg.Editor.GapSize {
		a.logger.Info("buffer capacity and gap size apply on next start")
	}
	a.cfg = cfg
	a.logger.Info("config applied: tab_width=%d auto_indent=%t keymap_modes=%d",
		cfg.Editor.TabWidth, cfg.Editor.AutoIndent, len(cfg.Keymap))
}
