package logger

import (
	"github.com/amirhossein-jamali/timespan-processor/internal/domain/port/core"
)

// NoopLogger discards every message while still remembering the level
// it was set to. Repository and handler tests use it to keep test
// output quiet without stubbing each method.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a silent logger starting at info level
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel remembers the level without affecting output
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel reports the remembered level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

// Debug discards the message
func (l *NoopLogger) Debug(message string, fields map[string]any) {}

// Info discards the message
func (l *NoopLogger) Info(message string, fields map[string]any) {}

// Warn discards the message
func (l *NoopLogger) Warn(message string, fields map[string]any) {}

// Error discards the message
func (l *NoopLogger) Error(message string, fields map[string]any) {}

// Flush has nothing to drain
func (l *NoopLogger) Flush() error {
	return nil
}
