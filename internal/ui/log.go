package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes diagnostics, keeping stdout free for command output
type Logger struct {
	out io.Writer
}

// NewLogger creates a Logger writing to out, or to stderr when out is nil
func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out}
}

// Warnf prints a recoverable problem
func (l *Logger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, "warning: "+format+"\n", args...)
}

// Errorf prints a problem that ends the run
func (l *Logger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.out, "error: "+format+"\n", args...)
}

// Infof prints a plain status line
func (l *Logger) Infof(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}
