// Package terminal reports properties of the attached output terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdout is attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// MapArea returns the columns and rows available for a map once
// reserveRows lines are kept for surrounding text.
func MapArea(reserveRows int) (cols, rows int) {
	width, height := GetSize()
	rows = height - reserveRows
	if rows < 1 {
		rows = 1
	}
	return width, rows
}
