package adapters

// LogLevel controls which diagnostics a logger emits.
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelNone  LogLevel = "NONE"
)

// LoggerAdapter receives the emitter's diagnostics. The emitter never speaks
// to the host except through this interface; implement it to route
// diagnostics into the host's own logging.
type LoggerAdapter interface {
	Debug(message string, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message string, args ...interface{})
}

// NoOpLoggerAdapter discards all diagnostics.
type NoOpLoggerAdapter struct{}

// NewNoOpLoggerAdapter creates a logger that logs nothing.
func NewNoOpLoggerAdapter() *NoOpLoggerAdapter {
	return &NoOpLoggerAdapter{}
}

func (n *NoOpLoggerAdapter) Debug(message string, args ...any) {}
func (n *NoOpLoggerAdapter) Info(message string, args ...any)  {}
func (n *NoOpLoggerAdapter) Warn(message string, args ...any)  {}
func (n *NoOpLoggerAdapter) Error(message string, args ...any) {}
