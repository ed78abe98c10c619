package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const tickIDKey ctxKey = "tickID"

// InitLogger installs the default logger writing to stdout
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the default logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	slog.SetDefault(New(cfg, w))
}

// New builds a logger from the config without installing it
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	attrs := cfg.BaseAttributes()
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return slog.New(handler).With(args...)
}

// ForMod returns a child logger tagged with a mod's unique ID
func ForMod(base *slog.Logger, modID string) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	return base.With(AttrKeyMod, modID)
}

// GenerateTickID creates a new UUID for correlating one automation tick.
func GenerateTickID() string {
	return uuid.NewString()
}

// WithTickID returns a new context containing the tick ID.
func WithTickID(ctx context.Context, tickID string) context.Context {
	return context.WithValue(ctx, tickIDKey, tickID)
}

// TickIDFromContext extracts the tick ID from the context, if present.
func TickIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(tickIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetTickID returns the tick ID or an empty string.
func GetTickID(ctx context.Context) string {
	id, _ := TickIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the tick_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := TickIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyTickID, id)
	}
	return slog.Default()
}

// Debug logs at debug level on the default logger
func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }

// Info logs at info level on the default logger
func Info(msg string, args ...any) { slog.Default().Info(msg, args...) }

// Warn logs at warn level on the default logger
func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }

// Error logs at error level on the default logger
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }
