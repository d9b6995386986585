package common

import (
	"context"
	"log"
)

// SessionLogger provides logging scoped to one quote session
type SessionLogger interface {
	Log(level, message string, fields map[string]interface{})
}

type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger SessionLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op
// logger if not found
func LoggerFromContext(ctx context.Context) SessionLogger {
	if logger, ok := ctx.Value(loggerKey).(SessionLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, fields map[string]interface{}) {
}

// StdLogger writes session log lines through the standard library logger
type StdLogger struct{}

func (l *StdLogger) Log(level, message string, fields map[string]interface{}) {
	if len(fields) == 0 {
		log.Printf("[%s] %s", level, message)
		return
	}
	log.Printf("[%s] %s %v", level, message, fields)
}
