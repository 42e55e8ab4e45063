package keymap

import (
	"fmt"
	"strings"
)

// Action names an editor command. The zero value is Nop, so an unbound
// table slot does nothing.
type Action uint8

const (
	Nop Action = iota

	// Insert mode editing
	InsertChar
	InsertNewLine
	InsertTab
	DeleteBackwards
	DeleteForwards

	// Cursor movement
	CursorLeft
	CursorRight
	CursorUp
	CursorDown
	GotoLineBegin
	GotoLineEnd
	PageUp
	PageDown

	// Mode transitions and the pending sequence
	NormalMode
	NormalHandle
	NormalClear
	InsertMode
	InsertModeNext
	InsertBeginningOfLine
	InsertEndOfLine
	NewLineAfter
	NewLineBefore
	VisualMode
	VisualModeLine

	// Normal mode commands
	NormalCursorBack
	NormalCursorNext
	GoWordNext
	GoWordEnd
	GoWordPrev
	GotoBufferBegin
	GotoBufferEnd
	SkipParagraphUp
	SkipParagraphDown
	DeleteChar
	YankLine
	Paste
	DeleteLine
	DeleteWord
	ChangeWord

	// Visual mode commands
	VisualLineDown
	VisualLineUp
	VisualLineBufferBegin
	VisualLineBufferEnd
	VisualDelete
	VisualYank

	actionCount
)

type actionInfo struct {
	name        string
	description string
	category    string
}

var actions = [actionCount]actionInfo{
	Nop:                   {"nop", "Do nothing", ""},
	InsertChar:            {"insert_char", "Insert the typed character", "Editing"},
	InsertNewLine:         {"insert_new_line", "Split the line, keeping indentation", "Editing"},
	InsertTab:             {"insert_tab", "Insert a tab", "Editing"},
	DeleteBackwards:       {"delete_backwards", "Delete the character before the cursor", "Editing"},
	DeleteForwards:        {"delete_forwards", "Delete the character under the cursor", "Editing"},
	CursorLeft:            {"cursor_left", "Move left", "Movement"},
	CursorRight:           {"cursor_right", "Move right", "Movement"},
	CursorUp:              {"cursor_up", "Move up", "Movement"},
	CursorDown:            {"cursor_down", "Move down", "Movement"},
	GotoLineBegin:         {"goto_line_begin", "Move to line start", "Movement"},
	GotoLineEnd:           {"goto_line_end", "Move to line end", "Movement"},
	PageUp:                {"page_up", "Move up one screen", "Movement"},
	PageDown:              {"page_down", "Move down one screen", "Movement"},
	NormalMode:            {"normal_mode", "Enter normal mode", "Mode"},
	NormalHandle:          {"normal_handle", "Feed the key to the pending sequence", "Mode"},
	NormalClear:           {"normal_clear", "Clear the pending sequence", "Mode"},
	InsertMode:            {"insert_mode", "Insert before the cursor", "Mode"},
	InsertModeNext:        {"insert_mode_next", "Insert after the cursor", "Mode"},
	InsertBeginningOfLine: {"insert_beginning_of_line", "Insert at line start", "Mode"},
	InsertEndOfLine:       {"insert_end_of_line", "Insert at line end", "Mode"},
	NewLineAfter:          {"new_line_after", "Open a line below", "Mode"},
	NewLineBefore:         {"new_line_before", "Open a line above", "Mode"},
	VisualMode:            {"visual_mode", "Start characterwise selection", "Mode"},
	VisualModeLine:        {"visual_mode_line", "Start linewise selection", "Mode"},
	NormalCursorBack:      {"normal_cursor_back", "Move left within the line", "Movement"},
	NormalCursorNext:      {"normal_cursor_next", "Move right within the line", "Movement"},
	GoWordNext:            {"go_word_next", "Move to next word", "Movement"},
	GoWordEnd:             {"go_word_end", "Move to end of word", "Movement"},
	GoWordPrev:            {"go_word_prev", "Move to previous word", "Movement"},
	GotoBufferBegin:       {"goto_buffer_begin", "Go to buffer start", "Movement"},
	GotoBufferEnd:         {"goto_buffer_end", "Go to buffer end", "Movement"},
	SkipParagraphUp:       {"skip_paragraph_up", "Move to previous blank line", "Movement"},
	SkipParagraphDown:     {"skip_paragraph_down", "Move to next blank line", "Movement"},
	DeleteChar:            {"delete_char", "Delete the character under the cursor", "Editing"},
	YankLine:              {"yank_line", "Copy the current line", "Registers"},
	Paste:                 {"paste", "Paste after the cursor", "Registers"},
	DeleteLine:            {"delete_line", "Delete the current line", "Editing"},
	DeleteWord:            {"delete_word", "Delete to the next word", "Editing"},
	ChangeWord:            {"change_word", "Replace to the end of the word", "Editing"},
	VisualLineDown:        {"visual_line_down", "Extend selection down", "Visual"},
	VisualLineUp:          {"visual_line_up", "Extend selection up", "Visual"},
	VisualLineBufferBegin: {"visual_line_buffer_begin", "Extend selection to buffer start", "Visual"},
	VisualLineBufferEnd:   {"visual_line_buffer_end", "Extend selection to buffer end", "Visual"},
	VisualDelete:          {"visual_delete", "Delete the selection", "Visual"},
	VisualYank:            {"visual_yank", "Copy the selection", "Visual"},
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, actionCount)
	for a := Action(0); a < actionCount; a++ {
		m[actions[a].name] = a
	}
	return m
}()

// String returns the action's snake_case name.
func (a Action) String() string {
	if a < actionCount {
		return actions[a].name
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Description returns a short help text.
func (a Action) Description() string {
	if a < actionCount {
		return actions[a].description
	}
	return ""
}

// Category groups actions for display purposes.
func (a Action) Category() string {
	if a < actionCount {
		return actions[a].category
	}
	return ""
}

// Valid reports whether a is a defined action.
func (a Action) Valid() bool {
	return a < actionCount
}

// ParseAction returns the action with the given name. Hyphens and dots are
// accepted in place of underscores.
func ParseAction(name string) (Action, error) {
	norm := strings.NewReplacer("-", "_", ".", "_").Replace(strings.ToLower(strings.TrimSpace(name)))
	if a, ok := actionsByName[norm]; ok {
		return a, nil
	}
	return Nop, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Actions returns every defined action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}
