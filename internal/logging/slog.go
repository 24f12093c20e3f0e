package logging

import (
	"context"
	"io"
	"log/slog"
)

// SlogLogger implements Logger on top of log/slog, the backend used across
// the application. The zero value is not usable; construct it with
// NewSlogLogger or NewTextLogger.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps an already configured slog logger.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewTextLogger builds a logger writing human-readable lines to w at the
// given minimum level.
func NewTextLogger(w io.Writer, level slog.Level) *SlogLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogLogger{l: slog.New(handler)}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

// With returns a logger whose entries carry the given attributes.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
