package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mmr-tortoise/tempconv/internal/model"
	"github.com/mmr-tortoise/tempconv/internal/prompt"
	"github.com/mmr-tortoise/tempconv/internal/report"
	"github.com/mmr-tortoise/tempconv/internal/ui"
)

// Prompt and guidance messages for the two input steps. The value prompt
// is built per run because it names the direction the user chose.
const (
	unitPrompt = "Enter C to convert to Fahrenheit or F to convert to Celsius"
	unitError  = "Invalid input. Please enter 'C' or 'F'."
	valueError = "Invalid temperature. Please enter a number."
)

// Session drives one conversion cycle against the given streams.
// In production the streams are os.Stdin and os.Stdout; tests use
// in-memory buffers with a plain (uncolored) theme.
type Session struct {
	in    io.Reader
	out   io.Writer
	theme *ui.Theme
}

// New creates a Session over the given streams and theme.
func New(in io.Reader, out io.Writer, theme *ui.Theme) *Session {
	return &Session{in: in, out: out, theme: theme}
}

// Run performs a single conversion cycle:
//
//	header → unit selection → value entry → convert → report
//
// It returns nil after printing the report, prompt.ErrQuit if the user
// typed the quit token at either prompt (the acknowledgement is already
// printed; callers stay silent), or a *model.CLIError with ExitIOError
// if the input stream failed. Invalid input never reaches this level:
// the prompt loop re-asks until it gets a parseable line.
func (s *Session) Run() error {
	reader := prompt.NewReader(s.in)

	fmt.Fprintf(s.out, "\n%s\n", s.theme.Header("--- Temperature Conversion ---"))

	unit, err := prompt.Ask(reader, s.out, s.theme, unitPrompt, unitError, model.ParseUnit)
	if err != nil {
		return s.asOutcome(err)
	}

	valuePrompt := fmt.Sprintf("Enter a number to convert %s to %s.", unit.Name(), unit.Opposite().Name())
	value, err := prompt.Ask(reader, s.out, s.theme, valuePrompt, valueError, parseValue)
	if err != nil {
		return s.asOutcome(err)
	}

	original := model.NewTemperature(value, unit)
	converted := original.ConvertTo(unit.Opposite())

	fmt.Fprintf(s.out, "\n%s\n", s.theme.Result(report.Conversion(original, converted)))
	return nil
}

// parseValue parses a temperature magnitude. The input reader has already
// normalized the line, so this is a plain float64 parse.
func parseValue(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// asOutcome maps a prompt failure to the session outcome: a quit request
// passes through as the sentinel, anything else is a fatal stream failure
// tagged with the I/O exit code.
func (s *Session) asOutcome(err error) error {
	if errors.Is(err, prompt.ErrQuit) {
		return err
	}
	return model.WrapCLIError(model.ExitIOError, "program terminated due to I/O error", err)
}
