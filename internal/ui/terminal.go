package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// StderrIsTerminal reports whether stderr is attached to a terminal
func StderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
