// Package zerologger adapts a zerolog.Logger to the authz.Logger interface,
// for hosts that already log through zerolog.
package zerologger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger implements authz.Logger on top of zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing structured lines to w with timestamps.
func New(w io.Writer) *Logger {
	return &Logger{zl: zerolog.New(w).With().Timestamp().Logger()}
}

// Wrap adapts an existing zerolog.Logger.
func Wrap(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// Debugf is for debug logging
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

// Errorf is for error logging
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}
