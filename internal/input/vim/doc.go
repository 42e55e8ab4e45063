// Package vim resolves multi-key normal mode commands.
//
// In normal mode every printable key is appended to a Sequence, a small
// bounded buffer. After each append the pending bytes are resolved against
// a fixed grammar:
//
//	x h j k l w e b y p i a I A o O v V G { } $   single key commands
//	gg dd dw cw                                   two key commands
//
// A key that starts a two key command (g, d, c) waits for the next key.
// Keys typed with Ctrl held are recorded as '^' followed by the key, so
// they never collide with the plain key. Counts are not supported: a
// sequence starting with a digit never matches.
//
// When Resolve reports StatusComplete or StatusInvalid the caller clears
// the sequence.
//
// The package also provides the RegisterStore that yank, delete and paste
// share.
package vim
