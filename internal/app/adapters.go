package app

import (
	"fmt"

	"github.com/dshills/ayed/internal/config"
	"github.com/dshills/ayed/internal/input/keymap"
	"github.com/dshills/ayed/internal/logging"
)

// scriptTarget adapts the application to script.Target. Scripts run on the
// event loop goroutine, so no locking is needed.
type scriptTarget struct {
	app *Application
}

// Map binds keys in the live keymap registry and remembers the binding so
// it survives a config reload.
func (t *scriptTarget) Map(modeName, keys, action string) error {
	o := keymap.Overrides{modeName: {keys: action}}
	if err := t.app.editor.Keymaps().ApplyOverrides(o, "script"); err != nil {
		return err
	}
	a := t.app
	if a.scriptKeys == nil {
		a.scriptKeys = keymap.Overrides{}
	}
	if a.scriptKeys[modeName] == nil {
		a.scriptKeys[modeName] = map[string]string{}
	}
	a.scriptKeys[modeName][keys] = action
	return nil
}

// Set changes one editor option. The running config is updated too so
// later reads see the scripted value.
func (t *scriptTarget) Set(option string, value any) error {
	a := t.app
	switch option {
	case "tab_width":
		n, ok := value.(int)
		if !ok || n < 1 || n > config.MaxTabWidth {
			return fmt.Errorf("tab_width must be an integer in 1..%d, got %v", config.MaxTabWidth, value)
		}
		a.pane.SetTabWidth(n)
		a.cfg.Editor.TabWidth = n

	case "auto_indent":
		on, ok := value.(bool)
		if !ok {
			return fmt.Errorf("auto_indent must be a boolean, got %v", value)
		}
		a.editor.SetAutoIndent(on)
		a.cfg.Editor.AutoIndent = on

	case "log_level":
		s, _ := value.(string)
		level, ok := logging.ParseLevel(s)
		if !ok {
			return fmt.Errorf("log_level must be debug, info, warn or error, got %v", value)
		}
		a.logger.SetLevel(level)
		a.cfg.Logging.Level = s

	default:
		return fmt.Errorf("%w: %s", ErrUnknownOption, option)
	}
	return nil
}

func (t *scriptTarget) Exec(action string) error {
	return t.app.editor.ExecuteName(action)
}

func (t *scriptTarget) Mode() string {
	return t.app.editor.Mode().String()
}

// RunScript runs Lua source against the editor, as the init script does.
func (a *Application) RunScript(name, src string) error {
	if err := a.script.DoString(name, src); err != nil {
		return NewOperationError("script", name, err)
	}
	return nil
}
