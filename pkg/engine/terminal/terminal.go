// Package terminal queries the controlling terminal and fits text to it.
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
// Falls back to defaults if stdout is not a terminal.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsInteractive reports whether stdout is attached to a terminal
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Clip cuts s to at most width runes. Returns "" for a non-positive width.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == width {
			return s[:i]
		}
		n++
	}
	return s
}
