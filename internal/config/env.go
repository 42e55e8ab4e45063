package config

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "AYED_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

type envSetter func(c *Config, name, value string) error

// envMapping maps each environment variable to the setting it overrides.
var envMapping = map[string]envSetter{
	EnvPrefix + "TAB_WIDTH": intSetter(func(c *Config) *int { return &c.Editor.TabWidth }),
	EnvPrefix + "CAPACITY":  intSetter(func(c *Config) *int { return &c.Editor.Capacity }),
	EnvPrefix + "GAP_SIZE":  intSetter(func(c *Config) *int { return &c.Editor.GapSize }),
	EnvPrefix + "INITIAL_MODE": stringSetter(func(c *Config) *string {
		return &c.Editor.InitialMode
	}),
	EnvPrefix + "AUTO_INDENT": func(c *Config, name, value string) error {
		b, ok := parseBool(value)
		if !ok {
			return invalid(name, value, "must be a boolean")
		}
		c.Editor.AutoIndent = b
		return nil
	},
	EnvPrefix + "LOG_LEVEL":   stringSetter(func(c *Config) *string { return &c.Logging.Level }),
	EnvPrefix + "LOG_FILE":    stringSetter(func(c *Config) *string { return &c.Logging.File }),
	EnvPrefix + "INIT_SCRIPT": stringSetter(func(c *Config) *string { return &c.Script.Init }),
}

// EnvVars returns the recognized environment variable names, sorted.
func EnvVars() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyEnv overrides settings from the environment. Empty values are
// treated as set. Unparsable numbers and booleans are reported together;
// the remaining variables are still applied.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	var errs []error
	for _, name := range EnvVars() {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		if err := envMapping[name](c, name, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func intSetter(field func(*Config) *int) envSetter {
	return func(c *Config, name, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return invalid(name, value, "must be an integer")
		}
		*field(c) = n
		return nil
	}
}

func stringSetter(field func(*Config) *string) envSetter {
	return func(c *Config, _, value string) error {
		*field(c) = value
		return nil
	}
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}
