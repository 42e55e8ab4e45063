// Package script runs user init scripts in a sandboxed Lua state.
//
// Scripts see a single global table, ayed:
//
//	ayed.map("normal", "Ctrl+E", "goto_buffer_end")
//	ayed.set("tab_width", 4)
//	ayed.exec("normal_mode")
//	if ayed.mode() == "normal" then ayed.log("ready", "debug") end
//
// Only the base, table, string and math libraries are opened; print
// writes to the editor log. Each run is bounded by a timeout.
package script
