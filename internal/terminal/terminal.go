package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ayed/internal/input/mode"
)

// Terminal draws panes on a tcell screen and reads its events.
type Terminal struct {
	screen tcell.Screen
	styles Styles
	mu     sync.Mutex
}

// New creates a terminal on the controlling tty.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an existing screen, such as a SimulationScreen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, styles: DefaultStyles()}
}

// Screen returns the underlying screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// SetStyles replaces the drawing styles.
func (t *Terminal) SetStyles(s Styles) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.styles = s
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(t.styles.Text)
	t.screen.Clear()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the screen width and height in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// PollEvent blocks for the next event. It returns nil once the screen
// has been shut down.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostEvent queues ev for PollEvent.
func (t *Terminal) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Sync redraws the whole screen, used after a resize.
func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Sync()
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

func (t *Terminal) setCursorStyle(style mode.CursorStyle) {
	var ts tcell.CursorStyle
	switch style {
	case mode.CursorBlock:
		ts = tcell.CursorStyleSteadyBlock
	case mode.CursorUnderline:
		ts = tcell.CursorStyleSteadyUnderline
	case mode.CursorBar:
		ts = tcell.CursorStyleSteadyBar
	case mode.CursorHidden:
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(ts)
}
