// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// File is the subset of *os.File needed for terminal checks.
type File interface {
	Fd() uintptr
}

// IsTerminal reports whether f refers to a terminal device.
func IsTerminal(f File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether stdin and stdout are both interactive terminals.
// This is the canonical implementation for terminal detection across the codebase.
func IsInteractive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}

// Size returns the width and height of the terminal behind f, or ok=false when f
// is not a terminal.
func Size(f File) (width int, height int, ok bool) {
	if !IsTerminal(f) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}
