// Package terminal is the tcell front end: it converts tcell key events
// into key.Event values and draws a pane's render cells plus a status
// line showing the mode, pending keys and cursor position.
package terminal
