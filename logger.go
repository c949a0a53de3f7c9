package galgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with galgo-specific helpers so compile and
// evaluation statistics are logged with consistent field names.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogCompile logs the outcome of compiling an expression. The surviving
// term count is the exact multiply-accumulate cost of each evaluation.
func (l *Logger) LogCompile(entities, inds, terms int, err error) {
	if err != nil {
		l.Error("compile failed",
			"entities", entities,
			"error", err,
		)
		return
	}
	l.Debug("expression compiled",
		"entities", entities,
		"indeterminates", inds,
		"terms", terms,
	)
}

// LogEval logs a failed evaluation.
func (l *Logger) LogEval(terms int, err error) {
	if err != nil {
		l.Error("eval failed",
			"terms", terms,
			"error", err,
		)
	}
}
