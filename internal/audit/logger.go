package audit

import (
	"context"
	"log/slog"
)

// Logger writes audit events as structured log records under the "audit"
// group.
type Logger struct {
	base *slog.Logger
}

func New(base *slog.Logger) *Logger {
	return &Logger{base: base}
}

func (l *Logger) Log(ctx context.Context, ev Event) {
	attrs := []any{
		slog.String("action", ev.Action),
		slog.String("entity", ev.Entity),
	}
	if ev.EntityID != nil {
		attrs = append(attrs, slog.Uint64("entity_id", uint64(*ev.EntityID)))
	}
	if len(ev.Metadata) > 0 {
		meta := make([]any, 0, len(ev.Metadata))
		for k, v := range ev.Metadata {
			meta = append(meta, slog.Any(k, v))
		}
		attrs = append(attrs, slog.Group("metadata", meta...))
	}

	l.base.InfoContext(ctx, "audit", slog.Group("audit", attrs...))
}
