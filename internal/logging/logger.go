// File: logger.go
// Title: Structured Logger
// Description: Implements a small structured logger with named instances,
//              persistent context fields and text or JSON output. The
//              package keeps a default logger for convenience functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial logger implementation

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fields carries structured key/value context for a log entry
type Fields map[string]interface{}

// Logger is a leveled, named logger. With* methods return clones, so a
// configured logger can be shared safely.
type Logger struct {
	mu            sync.RWMutex
	level         Level
	output        io.Writer
	name          string
	jsonFormat    bool
	contextFields Fields
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Output io.Writer
	Name   string
	Format string // "text" or "json" (default: text)
}

// New creates a logger with default configuration: info level, text
// format, stderr output.
func New() *Logger {
	return &Logger{
		level:         LevelInfo,
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		output:        config.Output,
		name:          config.Name,
		jsonFormat:    config.Format == "json",
		contextFields: make(Fields),
	}
	if logger.output == nil {
		logger.output = os.Stderr
	}
	return logger
}

// WithName returns a clone with the given logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a clone carrying an additional persistent field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

// ErrorWithErr logs an error level message with an attached error value
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	merged := Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	if err != nil {
		merged["error"] = err.Error()
	}
	l.log(LevelError, message, merged)
}

// SetLevel sets the minimum level for this logger instance
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, message string, fields ...Fields) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !level.ShouldLog(l.level) {
		return
	}

	merged := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		merged[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}

	now := time.Now().Format(time.RFC3339)

	if l.jsonFormat {
		entry := map[string]interface{}{
			"timestamp": now,
			"level":     level.String(),
			"message":   message,
		}
		if l.name != "" {
			entry["logger"] = l.name
		}
		if len(merged) > 0 {
			entry["fields"] = merged
		}
		if data, err := json.Marshal(entry); err == nil {
			l.output.Write(append(data, '\n'))
		}
		return
	}

	var b strings.Builder
	b.WriteString(now)
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(level.String()))
	b.WriteString("]")
	if l.name != "" {
		b.WriteString(" ")
		b.WriteString(l.name)
		b.WriteString(":")
	}
	b.WriteString(" ")
	b.WriteString(message)

	// Stable field order for readable output
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, merged[k])
	}
	b.WriteString("\n")

	io.WriteString(l.output, b.String())
}

func (l *Logger) clone() *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	clone := &Logger{
		level:         l.level,
		output:        l.output,
		name:          l.name,
		jsonFormat:    l.jsonFormat,
		contextFields: make(Fields, len(l.contextFields)),
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}

// Default logger instance
var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
