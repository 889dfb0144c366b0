// Package cli implements the cobra-based entry point for tempconv.
//
// The root command itself runs the interactive conversion session: the
// program has no subcommands and no user-defined flags, only the framework's
// built-in --help and --version. This file also maps session outcomes to
// process exit codes: a finished conversion and a user quit both exit 0,
// an input stream failure is reported on stderr and exits 1.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/tempconv/internal/model"
	"github.com/mmr-tortoise/tempconv/internal/prompt"
	"github.com/mmr-tortoise/tempconv/internal/session"
	"github.com/mmr-tortoise/tempconv/internal/ui"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "tempconv",
		Short: "Interactive Celsius/Fahrenheit temperature converter",
		Long: `tempconv converts a single temperature value between Celsius and Fahrenheit.

It prompts for the unit to convert from, then for the value, performs the
conversion, and prints the result together with the formula that was applied.
Typing "quit" at any prompt ends the program.`,

		// The converter takes all of its input interactively; positional
		// arguments are a mistake worth reporting.
		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves in Execute.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert()
		},
	}

	return rootCmd
}

// runConvert runs one interactive conversion session against the real
// terminal streams and translates its outcome for cobra.
func runConvert() error {
	s := session.New(os.Stdin, os.Stdout, ui.NewTheme())
	err := s.Run()
	if err == nil {
		fmt.Println("\nProgram finished normally.")
	}
	return mapOutcome(err)
}

// mapOutcome translates a session outcome into the error handed back to
// cobra. Success and a user quit both become nil (exit 0); the quit
// acknowledgement was already printed by the prompt loop, and nothing
// further may be shown. Everything else propagates to Execute.
func mapOutcome(err error) error {
	if err == nil || errors.Is(err, prompt.ErrQuit) {
		return nil
	}
	return err
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError values carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error (bad invocation, unexpected failure): exit code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitIOError))
	}
}

// printError writes an error description to stderr. Stdout is reserved
// for prompts and the conversion report.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}
