// Package cursor implements the motion algebra: pure functions that compute
// a new logical offset from text content and a current offset.
//
// Motions read through the Text interface and never mutate it. Every motion
// is total: offsets outside [0, Len()] are clamped first, and reads past
// either end see a zero byte, so navigation never panics regardless of what
// the caller passes.
//
// Motion families:
//
//   - Byte and codepoint steps: Back, Next, PrevRune, NextRune
//   - Line-bounded steps for Normal mode: BackNormal, NextNormal
//   - Lines: LineBegin, LineEnd, NextLineBegin, PrevLineBegin, Column, ...
//   - Words (vi w/e/b): NextWord, EndOfWord, PrevWord
//   - Paragraphs: ParagraphUp, ParagraphDown
//   - Indentation: LineIndent, BraceMatchingIndentation
//
// Word motions split bytes into classes: whitespace, word characters
// (letters, digits, underscore, and any non-ASCII byte), and punctuation,
// where each punctuation byte is a class of its own.
//
// Selection describes a visual-mode range with an anchor/head model, and
// TransformOffset keeps stored offsets such as the visual anchor in step
// with edits.
package cursor
