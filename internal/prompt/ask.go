package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/mmr-tortoise/tempconv/internal/ui"
)

// ErrQuit signals that the user typed the reserved quit token at a prompt.
// It is a deliberate early-termination request, not a failure: callers
// match it with errors.Is and exit cleanly without printing anything
// beyond the acknowledgement Ask already wrote.
var ErrQuit = errors.New("user requested quit")

// quitToken is the reserved word that ends the program from any prompt.
// The Reader lowercases input, so the comparison is case-insensitive.
const quitToken = "quit"

// Ask prompts for a value of type T until one parses successfully.
//
// Each iteration prints the quit instruction and the prompt message, reads
// one normalized line, and checks the quit token BEFORE parsing: "quit"
// must never be mis-parsed as a malformed unit or number. On parse failure
// it prints errMsg and prompts again; invalid input never leaves the loop.
// A Reader I/O failure is returned immediately without re-prompting.
func Ask[T any](r *Reader, w io.Writer, theme *ui.Theme, msg, errMsg string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		fmt.Fprintf(w, "\nType %s to end the program or\n%s\n", theme.Keyword(`"QUIT"`), msg)

		line, err := r.ReadLine()
		if err != nil {
			return zero, err
		}

		if line == quitToken {
			fmt.Fprintln(w, theme.Quit("Exiting program."))
			return zero, ErrQuit
		}

		value, err := parse(line)
		if err != nil {
			fmt.Fprintln(w, theme.Error(errMsg))
			continue
		}
		return value, nil
	}
}
