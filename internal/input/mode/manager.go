package mode

// Manager tracks the active mode and notifies callbacks on transitions.
// Exactly one mode is active at a time; there is no terminal state.
type Manager struct {
	current  Mode
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ModeChangeCallback
}

// ModeChangeCallback is called when the mode changes.
type ModeChangeCallback func(from, to Mode)

// NewManager creates a manager starting in initial.
func NewManager(initial Mode) *Manager {
	return &Manager{current: initial, previous: initial}
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Previous returns the mode before the last transition.
func (m *Manager) Previous() Mode {
	return m.previous
}

// Is reports whether mode is active.
func (m *Manager) Is(mode Mode) bool {
	return m.current == mode
}

// Switch activates to. Switching to the active mode is a no-op
// and notifies nobody.
func (m *Manager) Switch(to Mode) {
	if to == m.current {
		return
	}
	from := m.current
	m.previous = from
	m.current = to

	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}

// OnChange registers a callback for mode changes.
func (m *Manager) OnChange(cb ModeChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}
