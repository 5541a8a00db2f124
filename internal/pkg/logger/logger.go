package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type zeroLogger struct {
	logger zerolog.Logger
}

// New creates a logger writing JSON lines to stdout at the given level.
// Unknown or empty levels fall back to info.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, level string) Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	// One extra frame for the wrapper methods below.
	zl := zerolog.New(w).Level(lvl).With().Timestamp().CallerWithSkipFrameCount(3).Logger()
	return &zeroLogger{logger: zl}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &zeroLogger{logger: zerolog.Nop()}
}

// Error logs an error message. err may be nil.
func (l *zeroLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

// Warn logs a warning message.
func (l *zeroLogger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

// Info logs an informational message.
func (l *zeroLogger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// Debug logs a debug message.
func (l *zeroLogger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}
