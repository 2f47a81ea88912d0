package log

import (
	"context"
	"log/slog"
)

// LevelHandler overrides the minimum level of the handler it wraps.
type LevelHandler struct {
	level   slog.Leveler
	handler slog.Handler
}

func NewLevelHandler(level slog.Leveler, h slog.Handler) *LevelHandler {
	// Avoid chains of LevelHandlers, only the outermost level counts.
	if lh, ok := h.(*LevelHandler); ok {
		h = lh.handler
	}
	if ph, ok := h.(*PrettyHandler); ok {
		h = ph.withLevel(level)
	}
	return &LevelHandler{level, h}
}

func (h *LevelHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LevelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

func (h *LevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewLevelHandler(h.level, h.handler.WithAttrs(attrs))
}

func (h *LevelHandler) WithGroup(name string) slog.Handler {
	return NewLevelHandler(h.level, h.handler.WithGroup(name))
}
