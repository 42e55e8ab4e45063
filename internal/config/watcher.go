package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/ayed/internal/logging"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// ErrWatcherClosed is returned by operations on a closed Watcher.
var ErrWatcherClosed = errors.New("watcher is closed")

// Watcher reloads the configuration file whenever it changes and delivers
// each successfully loaded Config on Updates. Load failures go to Errors
// and the previous configuration stays in effect.
//
// The file's directory is watched rather than the file, so atomic saves
// that replace the file by rename are seen.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	delay   time.Duration
	logger  *logging.Logger
	updates chan *Config
	errors  chan error

	mu      sync.Mutex
	timer   *time.Timer
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithWatchLogger sets the logger used for reload events.
func WithWatchLogger(l *logging.Logger) WatchOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWatcher starts watching the configuration file at path. The file
// need not exist yet; its directory must.
func NewWatcher(path string, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		delay:   DefaultDebounce,
		logger:  logging.Discard(),
		updates: make(chan *Config, 4),
		errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Updates delivers reloaded configurations.
func (w *Watcher) Updates() <-chan *Config { return w.updates }

// Errors delivers load and watch failures.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	close(w.updates)
	close(w.errors)
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Chmod) && !ev.Op.Has(fsnotify.Write) {
				continue
			}
			w.logger.Debug("config %s: %s", ev.Op, ev.Name)
			w.schedule()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// schedule (re)arms the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Reset(w.delay)
		return
	}
	w.timer = time.AfterFunc(w.delay, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if err != nil {
		w.logger.Warn("config reload failed: %v", err)
		w.sendErrorLocked(err)
		return
	}
	w.logger.Info("config reloaded from %s", w.path)
	select {
	case w.updates <- cfg:
	default:
		w.logger.Warn("config update dropped, consumer is behind")
	}
}

func (w *Watcher) sendError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.sendErrorLocked(err)
	}
}

func (w *Watcher) sendErrorLocked(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
