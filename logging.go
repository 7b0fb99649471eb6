package scrollreel

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}

// SetLogger replaces the package logger. Apps created afterwards use it
// unless WithLogger overrides it.
func SetLogger(l zerolog.Logger) {
	logger = l
}
