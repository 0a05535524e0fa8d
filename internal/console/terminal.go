package console

import (
	"os"

	"golang.org/x/term"
)

// GetTerminalSize returns the width and height of the terminal attached to
// stdout, where the report is written. It returns 0, 0 when stdout is not a
// terminal.
func GetTerminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}
