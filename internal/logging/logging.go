// Package logging builds the zerolog logger used across gitcz.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// SelectLevel maps the verbosity flags to a level: Debug with verbose, Warn with
// quiet, Info otherwise. verbose wins when both are set.
func SelectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a logger writing to w. Terminal writers without NO_COLOR get the
// human-readable console format, everything else gets JSON lines.
func New(w io.Writer, verbose, quiet bool) zerolog.Logger {
	return zerolog.New(selectOutput(w)).
		Level(SelectLevel(verbose, quiet)).
		With().Timestamp().Logger()
}

func selectOutput(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return w
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
}
