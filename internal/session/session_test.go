package session

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/tempconv/internal/model"
	"github.com/mmr-tortoise/tempconv/internal/prompt"
	"github.com/mmr-tortoise/tempconv/internal/ui"
)

// scenario is one scripted conversation loaded from testdata/scenarios.yaml.
type scenario struct {
	Name        string   `yaml:"name"`
	Input       string   `yaml:"input"`
	Outcome     string   `yaml:"outcome"`
	Contains    []string `yaml:"contains"`
	NotContains []string `yaml:"notContains"`
}

// scenarioFile is the top-level structure of the fixture file.
type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

// loadScenarios reads and parses the YAML scenario fixtures.
func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var file scenarioFile
	require.NoError(t, yaml.Unmarshal(data, &file))
	require.NotEmpty(t, file.Scenarios)
	return file.Scenarios
}

// runSession executes one session against scripted input with colors
// disabled, returning the stdout transcript and the outcome.
func runSession(input string) (string, error) {
	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, ui.NewPlainTheme())
	err := s.Run()
	return out.String(), err
}

// TestSession_Scenarios replays every scripted conversation from the
// fixture file and checks outcome and transcript.
func TestSession_Scenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			transcript, err := runSession(sc.Input)

			switch sc.Outcome {
			case "success":
				require.NoError(t, err, "transcript:\n%s", transcript)
			case "quit":
				assert.ErrorIs(t, err, prompt.ErrQuit)
			case "ioerror":
				var cliErr *model.CLIError
				require.ErrorAs(t, err, &cliErr)
				assert.Equal(t, model.ExitIOError, cliErr.Code)
			default:
				t.Fatalf("unknown outcome %q in fixture", sc.Outcome)
			}

			for _, want := range sc.Contains {
				assert.Contains(t, transcript, want)
			}
			for _, unwanted := range sc.NotContains {
				assert.NotContains(t, transcript, unwanted)
			}
		})
	}
}

// TestSession_HeaderAlwaysPrinted verifies the banner appears before the
// first prompt, even when the user quits immediately.
func TestSession_HeaderAlwaysPrinted(t *testing.T) {
	transcript, err := runSession("quit\n")
	assert.ErrorIs(t, err, prompt.ErrQuit)

	headerPos := strings.Index(transcript, "--- Temperature Conversion ---")
	promptPos := strings.Index(transcript, "Enter C to convert")
	require.GreaterOrEqual(t, headerPos, 0)
	require.GreaterOrEqual(t, promptPos, 0)
	assert.Less(t, headerPos, promptPos)
}

// TestSession_ValuePromptNamesChosenDirection verifies the second prompt
// reflects the unit selected in the first.
func TestSession_ValuePromptNamesChosenDirection(t *testing.T) {
	transcript, _ := runSession("f\n212\n")
	assert.Contains(t, transcript, "Enter a number to convert Fahrenheit to Celsius.")

	transcript, _ = runSession("c\n0\n")
	assert.Contains(t, transcript, "Enter a number to convert Celsius to Fahrenheit.")
}

// TestSession_QuitPrintsNoFailure verifies a quit produces the sentinel
// and not a CLIError, so the driver exits 0 without an error message.
func TestSession_QuitPrintsNoFailure(t *testing.T) {
	_, err := runSession("quit\n")
	require.Error(t, err)

	var cliErr *model.CLIError
	assert.False(t, errors.As(err, &cliErr))
	assert.ErrorIs(t, err, prompt.ErrQuit)
}

// TestSession_IOErrorCarriesUnderlyingFailure verifies the stream failure
// is preserved in the error chain for the driver to report.
func TestSession_IOErrorCarriesUnderlyingFailure(t *testing.T) {
	_, err := runSession("")
	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitIOError, cliErr.Code)
	assert.NotNil(t, cliErr.Err)
}
