package common

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger     zerolog.Logger
	loggerOnce sync.Once
)

// Logger returns the process logger. Until SetupLogger is called it writes
// info and above to stderr.
func Logger() *zerolog.Logger {
	loggerOnce.Do(func() {
		logger = newConsoleLogger(zerolog.InfoLevel)
	})
	return &logger
}

// SetupLogger replaces the process logger with one at the named level.
// Unknown levels fall back to info.
func SetupLogger(level string) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	loggerOnce.Do(func() {})
	logger = newConsoleLogger(lvl)
	return &logger
}

func newConsoleLogger(lvl zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
