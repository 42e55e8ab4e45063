// Package keymap maps key combinations to editor actions.
//
// Each mode owns a Keymap: a fixed table with one slot for every key.Combo.
// The table is total, so lookup never fails; combinations that were never
// bound resolve to Nop, which does nothing and emits no edit.
//
// # Actions
//
// Action is a closed enum. Every action has a stable snake_case name used
// in configuration files and scripts:
//
//	a, err := keymap.ParseAction("goto_buffer_begin")
//
// # Defaults
//
// Defaults returns one keymap per mode. In insert mode printable keys insert
// themselves. In normal mode every printable key is routed to normal_handle,
// which feeds the vim pending sequence; the sequence decides the command.
// The visual tables bind single keys directly.
//
// # Overrides
//
// Registry.ApplyOverrides applies user bindings keyed by mode name and key
// specification:
//
//	r := keymap.NewRegistry()
//	err := r.ApplyOverrides(keymap.Overrides{
//	    "normal": {"Ctrl+E": "goto_buffer_end"},
//	}, "config")
package keymap
