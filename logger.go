package neighborgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with neighborgo-specific helpers so cache
// operations log with consistent field names.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogBuild logs a full neighbor-list build.
func (l *Logger) LogBuild(particles, pairs int, err error) {
	if err != nil {
		l.Error("build failed",
			"particles", particles,
			"error", err,
		)
	} else {
		l.Debug("build completed",
			"particles", particles,
			"pairs", pairs,
		)
	}
}

// LogUpdate logs an update decision.
func (l *Logger) LogUpdate(rebuilt bool, err error) {
	if err != nil {
		l.Error("update failed",
			"error", err,
		)
	} else {
		l.Debug("update completed",
			"rebuilt", rebuilt,
		)
	}
}
