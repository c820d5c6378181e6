package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a JSON logger writing to w, or stdout when w is nil.
// Unknown levels fall back to info.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
