package editor

import (
	"github.com/dshills/ayed/internal/input/keymap"
	"github.com/dshills/ayed/internal/input/mode"
	"github.com/dshills/ayed/internal/logging"
)

// Option configures an Editor.
type Option func(*Editor)

// WithMode sets the initial mode.
func WithMode(m mode.Mode) Option {
	return func(e *Editor) {
		if m.Valid() {
			e.initial = m
		}
	}
}

// WithKeymaps sets the keymap registry.
func WithKeymaps(r *keymap.Registry) Option {
	return func(e *Editor) {
		e.keymaps = r
	}
}

// WithListener registers an edit listener.
func WithListener(l EditListener) Option {
	return func(e *Editor) {
		e.AddListener(l)
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l.WithComponent("editor")
		}
	}
}

// WithAutoIndent toggles auto-indentation.
func WithAutoIndent(on bool) Option {
	return func(e *Editor) {
		e.autoIndent = on
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(e *Editor) {
		if m != nil {
			e.metrics = m
		}
	}
}
