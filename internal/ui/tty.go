package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// IsStdinTTY returns true when stdin is connected to a terminal.
func IsStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Interactive reports whether both ends are terminals, i.e. prompts and
// full-screen UIs are usable.
func Interactive() bool {
	return IsStdinTTY() && IsStdoutTTY()
}

// ConfigureColor drops to plain output when stdout is not a terminal or
// NO_COLOR is set, so piped output carries no escape codes.
func ConfigureColor() {
	if !IsStdoutTTY() || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// TerminalWidth returns the stdout width, or fallback when it can't be read.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
