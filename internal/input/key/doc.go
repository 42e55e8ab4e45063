// Package key provides key event types and parsing for the input system.
//
// A key press is reduced to a Combo: an 8-bit base code with optional
// Ctrl, Alt, and Shift bits above it. Combos are small integers below
// MaxCombos, so a keymap can be a flat table indexed by combo.
//
//   - Code: the base key. Printable ASCII characters are their own code,
//     with letters folded to upper case; special keys take the remaining
//     control and high values; KeyUnicode stands for any non-ASCII rune.
//   - Modifier: the Ctrl, Alt, and Shift bits.
//   - Event: one key press or release carrying its Combo and the rune
//     that produced it.
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "G", "{", "Enter", "Esc"
//   - With modifiers: "Ctrl+S", "Alt+F", "Shift+Enter"
//   - Vim-style: "<C-s>", "<A-f>", "<S-CR>", "<Esc>"
//
// An upper-case letter on its own implies Shift. With Ctrl or Alt the case
// of a letter is ignored and Shift must be written out.
package key
