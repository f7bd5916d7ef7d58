package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// EnvLogLevel is read when --log-level isn't given.
const EnvLogLevel = "KARYTREE_LOG_LEVEL"

// newLogger writes console formatted logs to w, coloured only when w is a terminal.
// level is a zerolog level name; empty falls back to EnvLogLevel, then to info.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
			return zerolog.Nop(), err
		}
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
