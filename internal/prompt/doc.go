// Package prompt implements line-oriented user input for the tempconv CLI.
//
// It provides two layers: Reader, which reads and normalizes a single line
// from an input stream, and Ask, a generic validated prompt loop that
// re-prompts on invalid input, recognizes the reserved "quit" token before
// any parsing, and propagates stream failures immediately.
//
// Invalid input never escapes this package; only a quit request (ErrQuit)
// and I/O failures reach the caller.
package prompt
