package utils

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Logger provides structured, leveled logging throughout the application.
// It wraps zerolog with a console writer so progress signals stay
// human-readable.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger creates a new Logger writing to stdout. The level comes from
// LOG_LEVEL (zerolog level names); default is debug.
func NewLogger() *Logger {
	level := zerolog.DebugLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}

	return &Logger{
		zl: zerolog.New(output).Level(level).With().Timestamp().Logger(),
	}
}

func (l *Logger) Info(format string, args ...any) {
	l.zl.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.zl.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.zl.Error().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	l.zl.Debug().Msg(fmt.Sprintf(format, args...))
}
