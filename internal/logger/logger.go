// Package logger owns the process-wide structured logger. It is initialized exactly
// once per process with Init, which hands back the only handle callers may log through.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

// DefaultLevel is the fixed severity threshold of the executor.
const DefaultLevel = "INFO"

var (
	ErrAlreadyInitialized = errors.New("logger already initialized")
	ErrInvalidLevel       = errors.New("invalid log level")
	ErrInvalidFormat      = errors.New("invalid log format")
)

// Config holds logger configuration
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text, json
	Output string // stdout, stderr, or file path
}

var initialized atomic.Bool

// Init builds the process logger from cfg. Only the first call may succeed; every
// later call returns ErrAlreadyInitialized, even when the first one failed, because
// a failed initialization is expected to abort the process.
func Init(cfg Config) (*slog.Logger, error) {
	if !initialized.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}
	return New(cfg)
}

// New builds a logger without touching process-wide state.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	format, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	w, color, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	return NewWithWriter(w, level, format, color), nil
}

// NewWithWriter builds a logger on top of an arbitrary writer.
func NewWithWriter(w io.Writer, level slog.Level, format string, color bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = NewColorTextHandler(w, opts, color)
	}
	return slog.New(h)
}

// ParseLevel converts a case-insensitive level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
}

func parseFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case "", "text":
		return "text", nil
	case "json":
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// openOutput resolves the sink and whether it supports color.
func openOutput(output string) (io.Writer, bool, error) {
	switch strings.ToLower(output) {
	case "stdout", "":
		return os.Stdout, isTerminal(os.Stdout), nil
	case "stderr":
		return os.Stderr, isTerminal(os.Stderr), nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open log file %q: %w", output, err)
	}
	return f, false, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
