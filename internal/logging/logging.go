// Package logging builds the zerolog loggers used by the keybind CLI.
//
// Library packages never create loggers; they accept a zerolog.Logger and
// default to zerolog.Nop().
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "console" or "json"
	TimeFormat string
}

// DefaultConfig returns the default logging configuration.
// Only warnings and errors are shown unless a lower level is requested.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.WarnLevel,
		Format:     FormatConsole,
		TimeFormat: time.Kitchen,
	}
}

// New creates a logger writing to w. A nil w writes to os.Stderr.
func New(cfg Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	output := w
	if cfg.Format != FormatJSON {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    !IsTerminal(w),
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel parses a level name. "warning" is accepted for warn.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "off", "disabled":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// ParseFormat validates an output format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatConsole, FormatJSON:
		return f, nil
	case "":
		return FormatConsole, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// FromStrings builds a Config from flag values, keeping defaults for
// empty strings.
func FromStrings(level, format string) (Config, error) {
	cfg := DefaultConfig()
	if level != "" {
		lvl, err := ParseLevel(level)
		if err != nil {
			return cfg, err
		}
		cfg.Level = lvl
	}
	f, err := ParseFormat(format)
	if err != nil {
		return cfg, err
	}
	cfg.Format = f
	return cfg, nil
}
