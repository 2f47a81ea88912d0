// Package log is a context wrapper around slog.Logger
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"testing"

	"oss.terrastruct.com/geoshape/lib/env"
)

var _default = slog.New(NewPrettyHandler(os.Stderr, slog.LevelInfo))

type loggerKey struct{}

func from(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		_default.WarnContext(ctx, "missing slog.Logger in context, see lib/log.With", slog.String("stack", string(debug.Stack())))
		return _default
	}
	return l
}

func With(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// WithDefault attaches the default stderr logger unless ctx already carries one.
func WithDefault(ctx context.Context) context.Context {
	if _, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	l := _default
	if env.Debug() {
		l = slog.New(NewLevelHandler(slog.LevelDebug, l.Handler()))
	}
	return With(ctx, l)
}

// WithTB routes logs through t.Log so they only show up for failing or verbose tests.
func WithTB(ctx context.Context, t testing.TB) context.Context {
	level := slog.LevelInfo
	if env.Debug() {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(&tbWriter{tb: t}, &slog.HandlerOptions{Level: level})
	return With(ctx, slog.New(h))
}

// Discard drops everything logged through ctx.
func Discard(ctx context.Context) context.Context {
	return With(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func Debug(ctx context.Context, msg string, attrs ...any) {
	from(ctx).DebugContext(ctx, msg, attrs...)
}

func Info(ctx context.Context, msg string, attrs ...any) {
	from(ctx).InfoContext(ctx, msg, attrs...)
}

func Warn(ctx context.Context, msg string, attrs ...any) {
	from(ctx).WarnContext(ctx, msg, attrs...)
}

func Error(ctx context.Context, msg string, attrs ...any) {
	from(ctx).ErrorContext(ctx, msg, attrs...)
}

// Named tags every record logged through the returned context with logger=name.
func Named(ctx context.Context, name string) context.Context {
	return With(ctx, from(ctx).With(slog.String("logger", name)))
}

func Leveled(ctx context.Context, level slog.Level) context.Context {
	return With(ctx, slog.New(NewLevelHandler(level, from(ctx).Handler())))
}
