// Package logger provides leveled logging for a terminal UI.
//
// The TUI owns the terminal, so the default logger writes to a file under
// the log directory. Plain (non-interactive) runs can log to stderr instead.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devnullvoid/shoptui/pkg/catalog/interfaces"
)

// LogFileName is the file created inside the log directory.
const LogFileName = "shoptui.log"

// Level represents the logging level.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts "debug", "info" or "error" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger implements interfaces.Logger with a level threshold and an optional
// component tag.
type Logger struct {
	out       *log.Logger
	level     *atomic.Int32
	component string
	file      *os.File
}

// Config holds configuration for the logger.
type Config struct {
	Level      Level
	Output     io.Writer
	LogFile    string
	TimeFormat string
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:      LevelInfo,
		Output:     os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// NewLogger creates a new logger with the given configuration. When LogFile
// is set, output goes to that file (and also to Output if Output is non-nil
// and not the default stderr).
func NewLogger(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	var file *os.File
	if config.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.LogFile), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f

		if config.Output != nil && config.Output != os.Stderr {
			output = io.MultiWriter(config.Output, file)
		} else {
			output = file
		}
	}

	timeFormat := config.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultConfig().TimeFormat
	}

	level := &atomic.Int32{}
	level.Store(int32(config.Level))

	return &Logger{
		out:   log.New(&timestampWriter{w: output, format: timeFormat}, "", 0),
		level: level,
		file:  file,
	}, nil
}

// NewInternalLogger creates a logger writing to LogFileName inside logDir.
// If logDir cannot be created it falls back to the current directory.
func NewInternalLogger(level Level, logDir string) (*Logger, error) {
	if logDir == "" {
		logDir = "."
	}

	if err := os.MkdirAll(logDir, 0o750); err != nil {
		logDir = "."
	}

	return NewLogger(&Config{
		Level:   level,
		LogFile: filepath.Join(logDir, LogFileName),
	})
}

// NewSimpleLogger creates a logger that writes to stderr.
func NewSimpleLogger(level Level) *Logger {
	logger, _ := NewLogger(&Config{Level: level, Output: os.Stderr})

	return logger
}

// Named returns a logger sharing output and level that tags every line with component.
func (l *Logger) Named(component string) *Logger {
	return &Logger{
		out:       l.out,
		level:     l.level,
		component: component,
		file:      nil,
	}
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if Level(l.level.Load()) > level {
		return
	}

	message := fmt.Sprintf(format, args...)
	if l.component != "" {
		l.out.Printf("[%s] [%s] %s", level, l.component, message)
		return
	}
	l.out.Printf("[%s] %s", level, message)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// GetLevel returns the current logging level.
func (l *Logger) GetLevel() Level {
	return Level(l.level.Load())
}

// Close closes the log file, if the logger opened one.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}

var _ interfaces.Logger = (*Logger)(nil)

// timestampWriter prefixes each write with a bracketed timestamp.
type timestampWriter struct {
	w      io.Writer
	format string
}

func (t *timestampWriter) Write(p []byte) (int, error) {
	stamp := "[" + time.Now().Format(t.format) + "] "
	if _, err := io.WriteString(t.w, stamp); err != nil {
		return 0, err
	}

	return t.w.Write(p)
}

var (
	globalLogger   *Logger
	globalLoggerMu sync.Mutex
)

// SetGlobalLogger replaces the process-wide logger.
func SetGlobalLogger(logger *Logger) {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the process-wide logger, creating a stderr logger
// at Info level if none was installed.
func GetGlobalLogger() *Logger {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()

	if globalLogger == nil {
		globalLogger = NewSimpleLogger(LevelInfo)
	}

	return globalLogger
}
