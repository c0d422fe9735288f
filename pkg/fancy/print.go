// Package fancy prints leveled messages, colored when written to a terminal.
package fancy

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

var (
	Info  = aurora.White
	Error = aurora.Red
)

type Level = func(arg any) aurora.Value

func Fprintf(w io.Writer, level Level, format string, args ...any) {
	_, _ = fmt.Fprint(w, colorize(w, level, fmt.Sprintf(format, args...)))
}

func Ferrorf(w io.Writer, format string, args ...any) {
	Fprintf(w, Error, format, args...)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorize(w io.Writer, level Level, s string) any {
	if !IsTerminal(w) {
		return s
	}
	return level(s)
}
