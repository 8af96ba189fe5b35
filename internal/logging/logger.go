// Package logging builds the zerolog loggers used by the CLI and examples.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for building a logger.
type Config struct {
	Level   string    // "debug", "info", ...; defaults to info
	Output  io.Writer // defaults to os.Stderr
	Console bool      // human readable output instead of JSON
	Service string    // attached to every entry when set
}

// New builds a logger from cfg. Unknown levels fall back to info.
func New(cfg Config) zerolog.Logger {
	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Console {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen, NoColor: true}
	}

	ctx := zerolog.New(writer).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if service := strings.TrimSpace(cfg.Service); service != "" {
		ctx = ctx.Str("service", service)
	}
	return ctx.Logger()
}

// ParseLevel parses level, returning zerolog.InfoLevel when it is empty or
// invalid.
func ParseLevel(level string) zerolog.Level {
	level = strings.TrimSpace(level)
	if level == "" {
		return zerolog.InfoLevel
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return parsed
}

// WithComponent returns a child logger annotated with the component name.
func WithComponent(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
