package mode

import (
	"fmt"
	"strings"
)

// Mode is one of the editor's editing modes.
type Mode uint8

const (
	// Insert types text at the cursor.
	Insert Mode = iota

	// Normal navigates and runs commands.
	Normal

	// Visual selects characters.
	Visual

	// VisualLine selects whole lines.
	VisualLine

	// Count is the number of modes.
	Count int = iota
)

// Standard mode names.
const (
	NameInsert     = "insert"
	NameNormal     = "normal"
	NameVisual     = "visual"
	NameVisualLine = "visual-line"
)

// String returns the mode identifier used in configuration.
func (m Mode) String() string {
	switch m {
	case Insert:
		return NameInsert
	case Normal:
		return NameNormal
	case Visual:
		return NameVisual
	case VisualLine:
		return NameVisualLine
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Insert:
		return "INSERT"
	case Normal:
		return "NORMAL"
	case Visual:
		return "VISUAL"
	case VisualLine:
		return "V-LINE"
	default:
		return "?"
	}
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert:
		return CursorBar
	case Visual, VisualLine:
		return CursorUnderline
	default:
		return CursorBlock
	}
}

// IsVisual reports whether m selects text.
func (m Mode) IsVisual() bool {
	return m == Visual || m == VisualLine
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return int(m) < Count
}

// Parse returns the mode for a name. Names are case-insensitive, and
// "visual_line" and "vline" are accepted for VisualLine.
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameInsert:
		return Insert, nil
	case NameNormal:
		return Normal, nil
	case NameVisual:
		return Visual, nil
	case NameVisualLine, "visual_line", "vline":
		return VisualLine, nil
	default:
		return 0, fmt.Errorf("unknown mode: %q", name)
	}
}

// All returns every mode in declaration order.
func All() []Mode {
	return []Mode{Insert, Normal, Visual, VisualLine}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline

	// CursorHidden hides the cursor.
	CursorHidden
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}
