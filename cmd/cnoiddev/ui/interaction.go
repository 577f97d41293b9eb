package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Configure picks the color profile once at startup: whatever the terminal
// supports normally, plain ASCII in CI, with NO_COLOR set, or on a dumb
// terminal. termenv already downgrades to ASCII when stdout is not a tty.
func Configure() {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
