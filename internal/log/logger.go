// Package log builds the structured slog loggers used across lifetrack.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldKey       = "key"
	FieldBackend   = "backend"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldDropped   = "dropped"
)

// Components
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentTracker = "tracker"
	ComponentTUI     = "tui"
)

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Component string
	Writer    io.Writer // defaults to stderr
}

// ParseLevel maps a config/env level name to a slog.Level. Empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}

// New creates a text logger tagged with the component name.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level})
	logger := slog.New(handler)
	if cfg.Component != "" {
		logger = logger.With(FieldComponent, cfg.Component)
	}
	return logger
}

// OpenFile creates a logger writing to name inside dir, for use while a
// full-screen program owns stderr. The returned closer closes the file.
func OpenFile(dir, name string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // dir is the XDG cache dir
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(Config{Level: level, Component: ComponentTUI, Writer: f}), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithComponent returns l tagged with a component name.
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	return l.With(FieldComponent, component)
}

// SetDefault sets the default logger for the application
func SetDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
