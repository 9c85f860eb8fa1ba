package adapters

import "log"

var levelRank = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
	LogLevelNone:  4,
}

// PrintLoggerAdapter writes diagnostics through the standard log package,
// tagged with the level and a [drift] marker. The default logger for an
// emitter without a custom one, at LogLevelWarn.
type PrintLoggerAdapter struct {
	level LogLevel
}

// NewPrintLoggerAdapter creates a print logger emitting at or above level.
func NewPrintLoggerAdapter(level LogLevel) *PrintLoggerAdapter {
	return &PrintLoggerAdapter{level: level}
}

func (p *PrintLoggerAdapter) emit(level LogLevel, message string, args []interface{}) {
	if levelRank[level] < levelRank[p.level] {
		return
	}
	log.Printf("["+string(level)+"] [drift] "+message, args...)
}

func (p *PrintLoggerAdapter) Debug(message string, args ...interface{}) {
	p.emit(LogLevelDebug, message, args)
}

func (p *PrintLoggerAdapter) Info(message string, args ...interface{}) {
	p.emit(LogLevelInfo, message, args)
}

func (p *PrintLoggerAdapter) Warn(message string, args ...interface{}) {
	p.emit(LogLevelWarn, message, args)
}

func (p *PrintLoggerAdapter) Error(message string, args ...interface{}) {
	p.emit(LogLevelError, message, args)
}
