// Package logging wires the solver engine's zerolog logger.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger at the given level ("debug", "info", "warn",
// "error"; unrecognized levels fall back to info). When pretty is true,
// output is a human-readable console writer over stderr; otherwise it is
// newline-delimited JSON, suitable for log aggregation.
func New(level string, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var out io.Writer = os.Stderr
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	l, err := zerolog.ParseLevel(level)
	if err != nil {
		l = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(l).With().Timestamp().Caller().Logger()
}
