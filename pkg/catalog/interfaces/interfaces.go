// Package interfaces defines the small abstractions the catalog client depends on.
//
// Keeping the logger behind an interface lets the client run silently in
// tests, log to a file under the TUI, and log to stderr in plain mode
// without the client knowing which one it got.
package interfaces

// Logger defines the interface for leveled, printf-style logging.
//
// Example usage:
//
//	logger.Debug("GET %s (request %s)", endpoint, requestID)
//	logger.Error("Failed to fetch catalog: %v", err)
type Logger interface {
	// Debug logs debug-level messages, shown only when debug logging is enabled.
	Debug(format string, args ...interface{})

	// Info logs informational messages about normal application flow.
	Info(format string, args ...interface{})

	// Error logs error messages for conditions worth investigating.
	Error(format string, args ...interface{})
}

// NoOpLogger is a logger implementation that discards all log messages.
type NoOpLogger struct{}

// Debug discards the debug message.
func (n *NoOpLogger) Debug(format string, args ...interface{}) {}

// Info discards the info message.
func (n *NoOpLogger) Info(format string, args ...interface{}) {}

// Error discards the error message.
func (n *NoOpLogger) Error(format string, args ...interface{}) {}
