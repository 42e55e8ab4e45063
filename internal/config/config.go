package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/ayed/internal/engine/buffer"
	"github.com/dshills/ayed/internal/engine/cursor"
	"github.com/dshills/ayed/internal/input/key"
	"github.com/dshills/ayed/internal/input/keymap"
	"github.com/dshills/ayed/internal/input/mode"
	"github.com/dshills/ayed/internal/logging"
)

// Defaults for the editor section.
const (
	DefaultCapacity    = 16 << 20
	DefaultInitialMode = mode.NameInsert
	MaxTabWidth        = 16
)

// Config is the complete editor configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Logging LoggingConfig `toml:"logging"`
	Script  ScriptConfig  `toml:"script"`

	// Keymap maps a mode name to key specs and action names, e.g.
	// keymap.normal."Ctrl+E" = "goto_buffer_end".
	Keymap map[string]map[string]string `toml:"keymap"`
}

// EditorConfig holds buffer and editing settings.
type EditorConfig struct {
	TabWidth    int    `toml:"tab_width"`
	Capacity    int    `toml:"capacity"`
	GapSize     int    `toml:"gap_size"`
	InitialMode string `toml:"initial_mode"`
	AutoIndent  bool   `toml:"auto_indent"`
}

// LoggingConfig holds logger settings. An empty File disables logging,
// since the terminal owns stderr while the editor runs.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ScriptConfig names the Lua init script.
type ScriptConfig struct {
	Init string `toml:"init"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:    cursor.DefaultTabWidth,
			Capacity:    DefaultCapacity,
			GapSize:     buffer.DefaultGapSize,
			InitialMode: DefaultInitialMode,
			AutoIndent:  true,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the TOML file at path over the defaults, applies AYED_*
// environment overrides and validates the result. A missing file is not
// an error; an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := cfg.decode(path, data); err != nil {
				return nil, err
			}
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadReader decodes TOML from r over the defaults and validates it.
// Environment overrides are not applied.
func LoadReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := cfg.decode("<reader>", data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	return nil
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	e := c.Editor
	if e.TabWidth < 1 || e.TabWidth > MaxTabWidth {
		errs = append(errs, invalid("editor.tab_width", e.TabWidth, "must be between 1 and %d", MaxTabWidth))
	}
	if e.GapSize < 1 {
		errs = append(errs, invalid("editor.gap_size", e.GapSize, "must be positive"))
	}
	if e.Capacity <= e.GapSize {
		errs = append(errs, invalid("editor.capacity", e.Capacity, "must exceed gap_size %d", e.GapSize))
	}
	if _, err := mode.Parse(e.InitialMode); err != nil {
		errs = append(errs, invalid("editor.initial_mode", e.InitialMode, "%v", err))
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		errs = append(errs, invalid("logging.level", c.Logging.Level, "must be debug, info, warn or error"))
	}
	errs = append(errs, c.validateKeymap()...)
	return errors.Join(errs...)
}

func (c *Config) validateKeymap() []error {
	var errs []error
	for _, m := range sortedKeys(c.Keymap) {
		if _, err := mode.Parse(m); err != nil {
			errs = append(errs, invalid("keymap."+m, m, "%v", err))
			continue
		}
		specs := c.Keymap[m]
		for _, spec := range sortedKeys(specs) {
			field := fmt.Sprintf("keymap.%s.%q", m, spec)
			if _, err := key.ParseCombo(spec); err != nil {
				errs = append(errs, invalid(field, specs[spec], "%v", err))
				continue
			}
			if _, err := keymap.ParseAction(specs[spec]); err != nil {
				errs = append(errs, invalid(field, specs[spec], "%v", err))
			}
		}
	}
	return errs
}

// InitialMode returns the parsed editor.initial_mode, Insert when invalid.
func (c *Config) InitialMode() mode.Mode {
	m, err := mode.Parse(c.Editor.InitialMode)
	if err != nil {
		return mode.Insert
	}
	return m
}

// LogLevel returns the parsed logging.level.
func (c *Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(c.Logging.Level)
	return l
}

// Overrides returns the keymap section in the form the keymap registry
// applies.
func (c *Config) Overrides() keymap.Overrides {
	return keymap.Overrides(c.Keymap)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	if c.Keymap != nil {
		out.Keymap = make(map[string]map[string]string, len(c.Keymap))
		for m, specs := range c.Keymap {
			inner := make(map[string]string, len(specs))
			for k, v := range specs {
				inner[k] = v
			}
			out.Keymap[m] = inner
		}
	}
	return &out
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
