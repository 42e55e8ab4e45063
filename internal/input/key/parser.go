package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// ParseCombo parses a key specification string into a Combo.
//
// Supported formats:
//   - Single character: "a", "G", "1", "{"
//   - Key names: "Enter", "Esc", "Tab", "Backspace", "Space", "Left"
//   - With modifiers: "Ctrl+S", "Alt+f", "Ctrl+Shift+P", "Shift+Enter"
//   - Vim-style: "<C-s>", "<A-f>", "<S-CR>", "<Esc>"
func ParseCombo(spec string) (Combo, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, ErrEmptySpec
	}

	// Check for Vim-style <...> notation
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Check for modifier+key format (Ctrl+S, Alt+F)
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKey(spec, ModNone)
}

// MustParseCombo parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseCombo(spec string) Combo {
	c, err := ParseCombo(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return c
}

// parseVimStyle parses Vim-style notation like "C-s", "S-CR", "Esc"
func parseVimStyle(inner string) (Combo, error) {
	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) > 1 {
		// "<C-->"
		keyPart = "-"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		if p == "" {
			continue
		}
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return 0, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKey(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Combo, error) {
	keyPart := spec[strings.LastIndex(spec, "+")+1:]
	prefix := strings.TrimSuffix(spec, "+"+keyPart)
	if keyPart == "" {
		// "Ctrl++"
		keyPart = "+"
		prefix = strings.TrimSuffix(spec, "++")
	}

	var mods Modifier
	for _, p := range strings.Split(prefix, "+") {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return 0, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKey(keyPart, mods)
}

// parseKey parses a key name or a single character with already-known
// modifiers.
func parseKey(keyPart string, mods Modifier) (Combo, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return 0, ErrInvalidSpec
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		if r >= 'A' && r <= 'Z' && mods&(ModCtrl|ModAlt) != 0 {
			// case is not significant next to Ctrl or Alt
			r += 'a' - 'A'
		}
		return RuneCombo(r, mods), nil
	}

	if code := KeyFromName(keyPart); code != KeyNone {
		return NewCombo(code, mods), nil
	}

	return 0, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
