package mathops

import (
	"fmt"
	"log"
	"strings"
)

// Logger is the minimal structured logging interface used by Calculator.
// keysAndValues are alternating keys and values, as in go-kit / slog style.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// SimpleLogger is a console logger writing through the standard log package.
// Suitable for examples and debugging; production users should supply their
// own Logger via WithLogger.
type SimpleLogger struct{}

// NewSimpleLogger creates a console logger.
func NewSimpleLogger() *SimpleLogger {
	return &SimpleLogger{}
}

// Debug logs at debug level.
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.print("DEBUG", msg, keysAndValues...)
}

// Info logs at info level.
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.print("INFO", msg, keysAndValues...)
}

// Warn logs at warn level.
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.print("WARN", msg, keysAndValues...)
}

// Error logs at error level.
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.print("ERROR", msg, keysAndValues...)
}

func (l *SimpleLogger) print(level, msg string, keysAndValues ...interface{}) {
	if len(keysAndValues) == 0 {
		log.Printf("[%s] mathops: %s", level, msg)
		return
	}

	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		key := fmt.Sprintf("%v", keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, "%s=%v", key, keysAndValues[i+1])
		} else {
			// Dangling key with no value.
			fmt.Fprintf(&b, "%s=", key)
		}
	}
	log.Printf("[%s] mathops: %s %s", level, msg, b.String())
}
