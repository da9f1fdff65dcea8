package core

// LogLevel orders logging severities from most to least verbose
type LogLevel int

const (
	// LogLevelDebug traces individual queries and computations
	LogLevelDebug LogLevel = iota
	// LogLevelInfo records completed diff requests and lifecycle events
	LogLevelInfo
	// LogLevelWarn flags rejected requests and degraded behavior
	LogLevelWarn
	// LogLevelError reports failures that need attention
	LogLevelError
)

// Logger is the structured logging port the domain writes to. Fields
// travel as plain maps so use cases and repositories never import a
// logging library directly.
type Logger interface {
	// SetLevel sets the minimum severity that produces output
	SetLevel(level LogLevel)
	// GetLevel reports the current minimum severity
	GetLevel() LogLevel
	// Debug logs fine-grained diagnostic messages
	Debug(message string, fields map[string]any)
	// Info logs normal operational messages
	Info(message string, fields map[string]any)
	// Warn logs conditions worth attention that are not failures
	Warn(message string, fields map[string]any)
	// Error logs failures
	Error(message string, fields map[string]any)
	// Flush drains any buffered output before shutdown
	Flush() error
}
