// Package logging defines a minimal leveled logging contract so the rest of
// the application does not depend on a concrete backend.
package logging

import "context"

type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}
