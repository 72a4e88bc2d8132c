// Package logging builds the slog loggers used by the CLI and the HTTP server
// and carries request-scoped loggers through context.
//
//	logger := logging.New("info", "text", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).Info("resolved", slog.String("version", v))
//
// Resolution failures are logged with the operation, the domain, its path and
// the full error chain:
//
//	logger.ErrorContext(ctx, "failed to describe domain history",
//	    slog.String("operation", "Resolve"),
//	    slog.String("domain", d.Name),
//	    slog.String("path", d.Path),
//	    slog.Any("error", err),
//	)
//
// All output passes through masq, so git remote credentials and host tokens
// that appear inside error strings are redacted.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type contextKey struct{}

// New returns a logger writing to w. Unknown levels fall back to info; any
// format other than "text" produces JSON. Debug loggers include the source
// location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored in ctx, or fallback. Services use it
// so that request-scoped loggers carry the request ID while direct callers
// keep the logger they were constructed with.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}
