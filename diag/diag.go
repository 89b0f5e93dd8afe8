// Package diag is the diagnostic stream of spec.md §4.1/§7: unknown-escape
// and unknown-tag warnings. It follows the teacher's unadorned
// fmt.Fprintf(os.Stderr, ...) style (cmd/wptest/main.go) rather than
// pulling in a logging framework the teacher itself never reaches for.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Logger writes warnings to an io.Writer, defaulting to os.Stderr.
type Logger struct {
	Out io.Writer
}

// NewLogger returns a Logger writing to os.Stderr.
func NewLogger() *Logger { return &Logger{Out: os.Stderr} }

// Warn formats and writes a warning line.
func (l *Logger) Warn(format string, args ...any) {
	out := l.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "warning: "+format+"\n", args...)
}

// Func adapts the Logger to the plain func(string) warn callback the
// token/element packages expect.
func (l *Logger) Func() func(string) {
	return func(msg string) { l.Warn("%s", msg) }
}
