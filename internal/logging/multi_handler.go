package logging

import (
	"context"
	"log/slog"
)

// MultiHandler dispatches records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a MultiHandler over handlers.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any underlying handler accepts level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle forwards r to every enabled handler and returns the first error.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewMultiHandler(h.each(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })...)
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return NewMultiHandler(h.each(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })...)
}

func (h *MultiHandler) each(fn func(slog.Handler) slog.Handler) []slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		out[i] = fn(handler)
	}
	return out
}
