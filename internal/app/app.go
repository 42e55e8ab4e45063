package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ayed/internal/config"
	"github.com/dshills/ayed/internal/editor"
	"github.com/dshills/ayed/internal/engine/buffer"
	"github.com/dshills/ayed/internal/input/keymap"
	"github.com/dshills/ayed/internal/input/mode"
	"github.com/dshills/ayed/internal/logging"
	"github.com/dshills/ayed/internal/pane"
	"github.com/dshills/ayed/internal/script"
	"github.com/dshills/ayed/internal/terminal"
)

// Options configures the application. Non-empty flag values override the
// configuration file and environment.
type Options struct {
	// ConfigPath is the TOML configuration file. Empty uses defaults and
	// the environment only, and disables live reload.
	ConfigPath string

	// File is opened into the buffer and is the target of saves.
	File string

	// LogLevel overrides logging.level.
	LogLevel string

	// LogFile overrides logging.file.
	LogFile string

	// Normal starts the editor in Normal mode.
	Normal bool

	// Screen replaces the controlling terminal, mainly for tests.
	Screen tcell.Screen
}

// Application owns every component of a running editor.
type Application struct {
	opts Options
	cfg  *config.Config

	logger   *logging.Logger
	closeLog func() error

	term    *terminal.Terminal
	buf     *buffer.GapBuffer
	pane    *pane.Pane
	editor  *editor.Editor
	watcher *config.Watcher
	script  *script.Runtime

	// scriptKeys holds bindings made by scripts; they are re-applied over
	// the config overrides whenever the keymaps are rebuilt.
	scriptKeys keymap.Overrides

	// message is shown on the status line until the next key.
	message string

	running      atomic.Bool
	events       chan tcell.Event
	done         chan struct{}
	shutdownOnce sync.Once
}

// New builds the application: configuration, logger, buffer, editor,
// terminal, init script and config watcher. The terminal is not touched
// until Run.
func New(opts Options) (*Application, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	app := &Application{
		opts:   opts,
		cfg:    cfg,
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
	}

	if err := app.initLogger(); err != nil {
		return nil, &InitError{Component: "logging", Err: err}
	}
	if err := app.initBuffer(); err != nil {
		app.closeLogger()
		return nil, &InitError{Component: "buffer", Err: err}
	}
	if err := app.initTerminal(); err != nil {
		app.closeLogger()
		return nil, &InitError{Component: "terminal", Err: err}
	}
	app.initEditor()
	app.initScript()
	app.initWatcher()

	app.logger.Info("ayed started: file=%q mode=%s", opts.File, app.editor.Mode())
	return app, nil
}

func loadConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with the non-empty command line values.
func applyFlags(cfg *config.Config, opts Options) {
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}
	if opts.Normal {
		cfg.Editor.InitialMode = mode.NameNormal
	}
}

// initLogger opens the log file. Without one, logging is disabled since
// stderr belongs to the terminal while the editor runs.
func (a *Application) initLogger() error {
	a.logger = logging.Discard()
	a.closeLog = func() error { return nil }
	if a.cfg.Logging.File == "" {
		return nil
	}

	l, closeFn, err := logging.OpenFile(a.cfg.Logging.File, logging.Config{
		Level:  a.cfg.LogLevel(),
		Prefix: "ayed",
	})
	if err != nil {
		return err
	}
	a.logger = l
	a.closeLog = closeFn
	return nil
}

// initBuffer allocates the buffer and loads the file, if any. A file that
// does not exist yet opens as an empty buffer.
func (a *Application) initBuffer() error {
	ed := a.cfg.Editor
	a.buf = buffer.New(ed.Capacity, buffer.WithGapSize(ed.GapSize))
	if a.opts.File == "" {
		return nil
	}

	err := a.buf.LoadFile(a.opts.File)
	switch {
	case err == nil:
		a.logger.Info("loaded %s (%d bytes)", a.opts.File, a.buf.Len())
	case errors.Is(err, fs.ErrNotExist):
		a.logger.Info("new file %s", a.opts.File)
	default:
		return NewOperationError("open", a.opts.File, err)
	}
	return nil
}

func (a *Application) initTerminal() error {
	if a.opts.Screen != nil {
		a.term = terminal.NewWithScreen(a.opts.Screen)
		return nil
	}
	t, err := terminal.New()
	if err != nil {
		return err
	}
	a.term = t
	return nil
}

func (a *Application) initEditor() {
	a.pane = pane.New(a.buf, 80, 24, pane.WithTabWidth(a.cfg.Editor.TabWidth))

	a.editor = editor.New(a.pane,
		editor.WithMode(a.cfg.InitialMode()),
		editor.WithKeymaps(a.buildKeymaps(a.cfg)),
		editor.WithLogger(a.logger.WithComponent("editor").WithField("pane", a.pane.ID())),
		editor.WithAutoIndent(a.cfg.Editor.AutoIndent),
	)
}

// buildKeymaps returns the default keymaps with cfg's overrides applied,
// then the bindings scripts have made. Entries were validated when they
// were first applied, so failures here are only logged.
func (a *Application) buildKeymaps(cfg *config.Config) *keymap.Registry {
	reg := keymap.NewRegistry()
	if err := reg.ApplyOverrides(cfg.Overrides(), "config"); err != nil {
		a.logger.ErrorErr("keymap overrides", err)
	}
	if err := reg.ApplyOverrides(a.scriptKeys, "script"); err != nil {
		a.logger.ErrorErr("script keymap", err)
	}
	return reg
}

// initScript creates the Lua runtime and runs the init script. A failing
// script is reported on the status line; startup continues.
func (a *Application) initScript() {
	a.script = script.New(&scriptTarget{app: a}, script.WithLogger(a.logger.WithComponent("script")))
	if a.cfg.Script.Init == "" {
		return
	}
	if err := a.script.DoFile(a.cfg.Script.Init); err != nil {
		a.logger.ErrorErr("init script", err)
		a.message = "init script failed: " + filepath.Base(a.cfg.Script.Init)
	}
}

// initWatcher starts live reload when a config file was named.
func (a *Application) initWatcher() {
	if a.opts.ConfigPath == "" {
		return
	}
	w, err := config.NewWatcher(a.opts.ConfigPath,
		config.WithWatchLogger(a.logger.WithComponent("config")))
	if err != nil {
		a.logger.Warn("config watch disabled: %v", err)
		return
	}
	a.watcher = w
}

// Config returns the configuration currently in effect.
func (a *Application) Config() *config.Config { return a.cfg }

// Editor returns the editor.
func (a *Application) Editor() *editor.Editor { return a.editor }

// Message returns the current status line message.
func (a *Application) Message() string { return a.message }

// Run takes over the terminal and processes events until the user quits
// (ErrQuit) or ctx is cancelled (ctx.Err()).
func (a *Application) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.term.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer a.term.Shutdown()

	w, h := a.term.Size()
	a.resize(w, h)

	go a.pollEvents()
	return a.eventLoop(ctx)
}

// Shutdown stops the event loop, closes the watcher and script runtime,
// logs the session metrics and closes the log file. It is safe to call
// more than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		close(a.done)

		if a.watcher != nil {
			if err := a.watcher.Close(); err != nil {
				a.logger.Warn("closing config watcher: %v", err)
			}
		}
		a.script.Close()

		snap := a.editor.Metrics().Snapshot()
		a.logger.Info("ayed exiting: keys=%d actions=%d edits=%d errors=%d avg=%s p99=%s uptime=%s",
			snap.KeyEvents, snap.Actions, snap.Edits, snap.Errors,
			snap.AvgKeyLatency, snap.P99KeyLatency, snap.Uptime.Round(time.Millisecond))
		a.closeLogger()
	})
}

func (a *Application) closeLogger() {
	if err := a.closeLog(); err != nil {
		a.logger.Warn("closing log: %v", err)
	}
}
