package main

import (
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// newLogger builds the harness's stderr progress logger: a console writer
// that always emits ANSI colors (go-colorable translates them on Windows
// consoles), matching the pack's convention of keeping structured logs off
// stdout so JSON output stays parseable.
func newLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	writer := zerolog.ConsoleWriter{Out: colorable.NewColorable(os.Stderr), TimeFormat: time.RFC3339}

	return zerolog.New(writer).With().Timestamp().Logger()
}

// engineLogWriter adapts a zerolog.Logger to the io.Writer the search
// package expects for its Options.Log sink, so search's plain-text
// diagnostics come out as structured "debug" events alongside the harness's
// own progress lines instead of bypassing zerolog entirely.
type engineLogWriter struct {
	logger zerolog.Logger
}

func (w engineLogWriter) Write(p []byte) (int, error) {
	w.logger.Debug().Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
