// Package logging provides the global structured logger for NoteDesk.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

var global atomic.Pointer[slog.Logger]

// Init initializes the global logger. Pretty output uses the tint handler;
// otherwise entries are written as JSON. A per-process session id is
// attached to every entry for log correlation.
func Init(w io.Writer, logLevel string, pretty bool) error {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("init global logger: %v", err)
	}

	var handler slog.Handler
	if pretty {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}

	SetDefault(slog.New(handler).With(slog.String("session_id", uuid.NewString())))

	return nil
}

// ParseLevel parses a textual slog level ("debug", "info", "warn", "error").
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}

// SetDefault replaces the global logger.
func SetDefault(l *slog.Logger) {
	global.Store(l)
}

// Default returns the global logger, falling back to slog's default when
// Init has not run.
func Default() *slog.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Err returns an error attribute rendered in red by the tint handler.
func Err(err error) slog.Attr {
	return tint.Err(err)
}

func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}
