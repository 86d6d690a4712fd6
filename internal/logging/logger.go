package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a configured application logger.
// It writes to Stderr so reports on Stdout stay machine readable.
// An empty level means info.
func New(level string) (zerolog.Logger, error) {
	return NewWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, level)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), err
		}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// NewNop returns a no-op logger.
func NewNop() zerolog.Logger {
	return zerolog.Nop()
}
