// Package logging provides structured logging for the profile client.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger is a structured logger for the profile client.
// It wraps slog.Logger with convenience methods for common logging patterns.
type Logger struct {
	*slog.Logger
}

// New creates a new Logger with the given handler.
func New(handler slog.Handler) *Logger {
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a new Logger with text output format.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}
	return New(slog.NewTextHandler(w, opts))
}

// NewJSONLogger creates a new Logger with JSON output format.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}
	return New(slog.NewJSONHandler(w, opts))
}

// NewDevelopmentLogger creates a logger suitable for development.
// Uses text format with debug level output to stderr.
func NewDevelopmentLogger() *Logger {
	return NewTextLogger(os.Stderr, slog.LevelDebug)
}

// NewNopLogger creates a logger that discards all output.
func NewNopLogger() *Logger {
	return New(nopHandler{})
}

// With returns a new Logger with the given attributes added to every log entry.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// WithComponent returns a new Logger with a component attribute.
func (l *Logger) WithComponent(name string) *Logger {
	return l.With(Component(name))
}

// WithAddress returns a new Logger with an account address attribute.
func (l *Logger) WithAddress(addr string) *Logger {
	return l.With(Address(addr))
}

// Common attribute constructors for profile-specific fields.

// Component creates a component attribute for identifying the source module.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Address creates an account address attribute.
func Address(addr string) slog.Attr {
	return slog.String("address", addr)
}

// Contract creates a contract address attribute.
func Contract(addr string) slog.Attr {
	return slog.String("contract", addr)
}

// ProfileVersion creates a profile layout version attribute.
func ProfileVersion(v uint32) slog.Attr {
	return slog.Int64("profile_version", int64(v))
}

// Method creates an RPC method attribute.
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// URL creates an endpoint URL attribute.
func URL(u string) slog.Attr {
	return slog.String("url", u)
}

// Backend creates a cache backend attribute.
func Backend(b string) slog.Attr {
	return slog.String("backend", b)
}

// Duration creates a duration attribute in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Nanoseconds())/1e6)
}

// Size creates a size attribute in bytes.
func Size(n int) slog.Attr {
	return slog.Int("size_bytes", n)
}

// Error creates an error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// nopHandler is a slog.Handler that discards all logs.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }
