// Package logging builds the zerolog logger used for diagnostics.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-tinymd/internal/config"
)

// consoleTimeFormat is the timestamp layout for console output.
const consoleTimeFormat = "15:04:05"

// Options controls logger construction.
type Options struct {
	Level   string // debug, info, warn, error (empty = info)
	Format  string // console, json (empty = console)
	NoColor bool   // disable ANSI colors in console output
}

// FromConfig maps the log section of a config to Options.
func FromConfig(cfg *config.Config) Options {
	return Options{Level: cfg.Log.Level, Format: cfg.Log.Format}
}

// ParseLevel converts a level name to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case config.LevelDebug:
		return zerolog.DebugLevel, nil
	case "", config.LevelInfo:
		return zerolog.InfoLevel, nil
	case config.LevelWarn:
		return zerolog.WarnLevel, nil
	case config.LevelError:
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: %q", config.ErrInvalidLogLevel, level)
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	switch strings.ToLower(opts.Format) {
	case "", config.FormatConsole:
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: consoleTimeFormat,
			NoColor:    opts.NoColor,
		}
	case config.FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", config.ErrInvalidLogFormat, opts.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
