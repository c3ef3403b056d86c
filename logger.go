package mdcompare

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with mdcompare-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithFeature adds a feature-name field to the logger.
func (l *Logger) WithFeature(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("feature", name),
	}
}

// WithCluster adds a cluster-id field to the logger.
func (l *Logger) WithCluster(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("cluster", id),
	}
}

// LogComparison logs a per-feature divergence comparison.
func (l *Logger) LogComparison(ctx context.Context, features int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "comparison failed",
			"features", features,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "comparison completed",
			"features", features,
		)
	}
}

// LogClustering logs a combined clustering run.
func (l *Logger) LogClustering(ctx context.Context, frames, clusters int, totalWSS float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"frames", frames,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering completed",
			"frames", frames,
			"clusters", clusters,
			"total_wss", totalWSS,
		)
	}
}

// LogProjection logs a projection-and-sort run.
func (l *Logger) LogProjection(ctx context.Context, axis, frames int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "projection failed",
			"axis", axis,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "projection completed",
			"axis", axis,
			"frames", frames,
		)
	}
}
