package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// newLogger configures zerolog the way a long-running TUI needs to: never
// write to stdout (that's the screen buffer), and keep output quiet unless
// verbose is requested.
func newLogger(logFile string, verbose bool) (zerolog.Logger, error) {
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, err
		}
		w = f
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
