package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// NewLogger returns a logger that writes applet diagnostics to stdio.Err.
// Records carry an applet attribute and no timestamp.
func NewLogger(stdio *Stdio, applet string) *slog.Logger {
	handler := tint.NewHandler(stdio.Err, &tint.Options{
		Level:   slog.LevelInfo,
		NoColor: !IsTerminal(stdio.Err),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler).With("applet", applet)
}

// IsTerminal reports whether w is a terminal, including Cygwin/MSYS ptys.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}
