// Package util provides common utilities: logging setup, file system paths,
// passphrase validation, and small generic helpers.
package util

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. Levels follow zerolog naming;
// unknown levels fall back to error so a CLI run stays quiet by default.
func NewLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parsed).
		With().Timestamp().Logger()
}

// NopLogger discards everything. Handy for tests.
func NopLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
