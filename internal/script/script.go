package script

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ayed/internal/logging"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 2 * time.Second

// Script errors
var (
	ErrScript = errors.New("script error")
	ErrClosed = errors.New("script runtime is closed")
)

// Target receives the effects of a script. The application adapts the
// editor to it.
type Target interface {
	// Map binds keys to the named action in the named mode.
	Map(mode, keys, action string) error
	// Set changes an editor option. Values are bool, int, float64 or string.
	Set(option string, value any) error
	// Exec runs the named action once.
	Exec(action string) error
	// Mode returns the active mode's name.
	Mode() string
}

// Runtime is a sandboxed Lua state exposing the ayed module. It is not
// safe for concurrent use.
type Runtime struct {
	L       *lua.LState
	target  Target
	logger  *logging.Logger
	timeout time.Duration
	closed  bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger that receives ayed.log and print output.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTimeout bounds each DoString and DoFile call. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		r.timeout = d
	}
}

// New creates a runtime acting on target.
func New(target Target, opts ...Option) *Runtime {
	r := &Runtime{
		target:  target,
		logger:  logging.Discard(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(r.L)
	r.install()
	return r
}

// openSafeLibraries opens base, table, string and math. io, os, debug
// and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoString runs src. The name labels errors.
func (r *Runtime) DoString(name, src string) error {
	return r.run(name, func() error { return r.L.DoString(src) })
}

// DoFile runs the script at path.
func (r *Runtime) DoFile(path string) error {
	return r.run(path, func() error { return r.L.DoFile(path) })
}

func (r *Runtime) run(name string, fn func() error) (err error) {
	if r.closed {
		return ErrClosed
	}

	if r.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		r.L.SetContext(ctx)
		defer r.L.RemoveContext()
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %s: lua panic: %v", ErrScript, name, p)
		}
	}()

	if err := fn(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrScript, name, err)
	}
	r.logger.Debug("script %s done", name)
	return nil
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

// install registers the ayed global and redirects print to the logger.
func (r *Runtime) install() {
	L := r.L
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"map":  r.luaMap,
		"set":  r.luaSet,
		"exec": r.luaExec,
		"mode": r.luaMode,
		"log":  r.luaLog,
	})
	L.SetGlobal("ayed", mod)
	L.SetGlobal("print", L.NewFunction(r.luaPrint))
}

// ayed.map(mode, keys, action)
func (r *Runtime) luaMap(L *lua.LState) int {
	m := L.CheckString(1)
	keys := L.CheckString(2)
	action := L.CheckString(3)
	if keys == "" {
		L.ArgError(2, "keys cannot be empty")
		return 0
	}
	if err := r.target.Map(m, keys, action); err != nil {
		L.RaiseError("map: %s", err.Error())
	}
	return 0
}

// ayed.set(option, value)
func (r *Runtime) luaSet(L *lua.LState) int {
	name := L.CheckString(1)
	var value any
	switch v := L.CheckAny(2).(type) {
	case lua.LBool:
		value = bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int(f)) {
			value = int(f)
		} else {
			value = f
		}
	case lua.LString:
		value = string(v)
	default:
		L.ArgError(2, "expected boolean, number or string, got "+v.Type().String())
		return 0
	}
	if err := r.target.Set(name, value); err != nil {
		L.RaiseError("set: %s", err.Error())
	}
	return 0
}

// ayed.exec(action)
func (r *Runtime) luaExec(L *lua.LState) int {
	if err := r.target.Exec(L.CheckString(1)); err != nil {
		L.RaiseError("exec: %s", err.Error())
	}
	return 0
}

// ayed.mode() -> string
func (r *Runtime) luaMode(L *lua.LState) int {
	L.Push(lua.LString(r.target.Mode()))
	return 1
}

// ayed.log(msg, level?)
func (r *Runtime) luaLog(L *lua.LState) int {
	msg := L.CheckString(1)
	level, ok := logging.ParseLevel(L.OptString(2, "info"))
	if !ok {
		L.ArgError(2, "unknown level")
		return 0
	}
	r.logAt(level, msg)
	return 0
}

func (r *Runtime) luaPrint(L *lua.LState) int {
	parts := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	r.logAt(logging.LevelInfo, strings.Join(parts, "\t"))
	return 0
}

func (r *Runtime) logAt(level logging.Level, msg string) {
	switch level {
	case logging.LevelDebug:
		r.logger.Debug("%s", msg)
	case logging.LevelWarn:
		r.logger.Warn("%s", msg)
	case logging.LevelError:
		r.logger.Error("%s", msg)
	default:
		r.logger.Info("%s", msg)
	}
}
