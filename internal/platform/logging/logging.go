// Package logging builds the service's slog loggers and carries the
// request-scoped logger through context.
//
//	logger := logging.New("info", "json", os.Stderr, slog.String("service", "petitions-service"))
//	ctx = logging.WithLogger(ctx, logger.With("request_id", id))
//	logging.FromContextOr(ctx, logger).InfoContext(ctx, "petition created")
//
// Error logs carry the operation name, entity identifiers and the error
// chain via slog.Any("error", err). Personal data is redacted by the
// handler, but callers should still log identifiers rather than values.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New creates a logger writing to w. Level accepts any slog level name
// ("debug", "INFO", "warn+2"); unknown values fall back to info. Format
// "text" selects the text handler, anything else JSON. Debug loggers
// include the source location. Attrs are attached to every record.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	return slog.New(handler)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored in ctx, or fallback. Services use
// it so that request-scoped fields reach their log lines when they are
// called from an HTTP request, and their own logger otherwise.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
