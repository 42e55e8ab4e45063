// Package config loads the editor configuration.
//
// Settings come from three places, later ones winning:
//
//   - built-in defaults (Default)
//   - a TOML file (Load, LoadReader)
//   - AYED_* environment variables (ApplyEnv)
//
// Example file:
//
//	[editor]
//	tab_width = 4
//	initial_mode = "normal"
//
//	[logging]
//	level = "debug"
//	file = "/tmp/ayed.log"
//
//	[keymap.normal]
//	"Ctrl+E" = "goto_buffer_end"
//
// A Watcher reloads the file on change so the running editor can apply
// tab width, auto-indent and keymap edits without a restart.
package config
