// Package logging builds the zerolog loggers used across takemehome and
// carries them through context.Context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a zerolog logger writing to w.
// The daemon hands a file or io.Discard here while the monitor TUI owns the terminal.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	output := w

	switch cfg.Format {
	case "console", "text":
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format != "" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// TAKEMEHOME_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TAKEMEHOME_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("TAKEMEHOME_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("TAKEMEHOME_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// FileConfig controls where a run writes its log file.
type FileConfig struct {
	Enabled       bool
	Dir           string
	Filename      string
	MaxSizeMB     int
	MaxBackups    int
	WriteToStderr bool
}

// NewWithFile creates a logger writing JSON lines to a rotating file and,
// when WriteToStderr is set, cfg-formatted output to stderr. The cleanup
// func closes the file.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	if !fc.Enabled {
		if fc.WriteToStderr {
			return New(cfg), noop, nil
		}
		return NewWithWriter(cfg, io.Discard), noop, nil
	}

	file, err := NewRotatingFile(fc.Dir, fc.Filename, fc.MaxSizeMB, fc.MaxBackups)
	if err != nil {
		fallback := New(cfg)
		return fallback, noop, err
	}
	cleanup := func() { _ = file.Close() }

	var w io.Writer = file
	if fc.WriteToStderr {
		var stderr io.Writer = os.Stderr
		if cfg.Format != "json" {
			stderr = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
		}
		w = zerolog.MultiLevelWriter(stderr, file)
	}

	logger := zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, cleanup, nil
}
