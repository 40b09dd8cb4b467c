// Package logging builds the zerolog logger. The terminal UI owns stdout and
// stderr while running, so logs only go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a logger writing to w. Debug enables the debug level and
// human-readable console output.
func Setup(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()

	if debug {
		logger = logger.Output(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339})
	}

	return logger
}

// Open appends to the log file at path and returns a logger for it along with
// a close func. An empty path disables logging.
func Open(path string, debug bool) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return Setup(f, debug), f.Close, nil
}
