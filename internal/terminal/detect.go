// Package terminal provides terminal detection utilities.
package terminal

import (
	"golang.org/x/term"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

var isTerminal = term.IsTerminal

// IsTerminal reports whether stream is backed by an interactive terminal.
// Pipes, buffers and other non-file streams are never terminals.
func IsTerminal(stream any) bool {
	f, ok := stream.(fder)
	if !ok {
		return false
	}
	return isTerminal(int(f.Fd()))
}
