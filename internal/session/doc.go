// Package session implements the interactive conversion flow of the
// tempconv CLI: header, unit selection, value entry, conversion, report.
//
// A Session runs against injected input/output streams so the entire flow
// is testable with in-memory buffers. It produces one of three outcomes:
// nil after a successful conversion, prompt.ErrQuit when the user typed
// the quit token, or a *model.CLIError carrying model.ExitIOError when
// the input stream failed.
package session
