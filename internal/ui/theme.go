// Package ui provides the terminal styling for the tempconv CLI.
//
// Styles are built with lipgloss and mirror the program's message palette:
// cyan header, yellow quit hints, red input errors, green conversion result.
// When stdout is not a terminal (piped or redirected output), styling is
// disabled and all text renders as plain strings.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Theme holds the lipgloss styles for every message category the CLI
// prints. A Theme with NoColor set renders all categories as plain text.
type Theme struct {
	// NoColor disables all styling. Set automatically when stdout is not
	// a TTY, or explicitly in tests for stable output comparison.
	NoColor bool

	header  lipgloss.Style
	keyword lipgloss.Style
	errMsg  lipgloss.Style
	quit    lipgloss.Style
	result  lipgloss.Style
}

// NewTheme creates a Theme with the standard palette. Styling is enabled
// only when stdout is connected to a terminal.
func NewTheme() *Theme {
	noColor := !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	return newTheme(noColor)
}

// NewPlainTheme creates a Theme with styling disabled, regardless of the
// TTY state. Used by tests and non-interactive output paths.
func NewPlainTheme() *Theme {
	return newTheme(true)
}

// newTheme builds the style set shared by both constructors.
func newTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		keyword: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		errMsg:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		quit:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		result:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}

// Header renders the program banner line.
func (t *Theme) Header(s string) string {
	return t.render(t.header, s)
}

// Keyword renders an emphasized token inside a prompt, such as the
// literal QUIT instruction.
func (t *Theme) Keyword(s string) string {
	return t.render(t.keyword, s)
}

// Error renders an invalid-input guidance message.
func (t *Theme) Error(s string) string {
	return t.render(t.errMsg, s)
}

// Quit renders the early-exit acknowledgement message.
func (t *Theme) Quit(s string) string {
	return t.render(t.quit, s)
}

// Result renders the final conversion report line.
func (t *Theme) Result(s string) string {
	return t.render(t.result, s)
}

// render applies the style unless colors are disabled.
func (t *Theme) render(style lipgloss.Style, s string) string {
	if t.NoColor {
		return s
	}
	return style.Render(s)
}
