// Package logging provides unified logging functionality for templet.
package logging

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dongho-jung/templet/internal/constants"
)

// Logger provides logging capabilities for templet.
type Logger interface {
	// Debug outputs debug information (only when TEMPLET_DEBUG=1)
	Debug(format string, args ...interface{})

	// Info writes informational message to the log file
	Info(format string, args ...interface{})

	// Warn outputs warning to stderr and log file
	Warn(format string, args ...interface{})

	// Error outputs error to stderr and log file
	Error(format string, args ...interface{})

	// Close closes the log file
	Close() error
}

type fileLogger struct {
	file  *os.File
	debug bool
	mu    sync.Mutex
}

// New creates a Logger that appends to the given file.
func New(logPath string, debug bool) (Logger, error) {
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &fileLogger{file: file, debug: debug}, nil
}

// NewStdout creates a logger that only outputs to stderr.
func NewStdout(debug bool) Logger {
	return &fileLogger{debug: debug}
}

// getCaller returns the caller function name, skipping logging frames.
func getCaller(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// logWithLevel writes a log entry with the specified level.
func (l *fileLogger) logWithLevel(level string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("06-01-02 15:04:05.0")
	caller := getCaller(3)

	line := fmt.Sprintf("[%s] [%-5s] [%s] %s\n", timestamp, level, caller, msg)
	if _, err := l.file.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write to log file: %v\n", err)
	}
}

func (l *fileLogger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	caller := getCaller(2)
	fmt.Fprintf(os.Stderr, "[DEBUG] [%s] %s\n", caller, msg)

	if l.file != nil {
		timestamp := time.Now().Format("06-01-02 15:04:05.0")
		line := fmt.Sprintf("[%s] [DEBUG] [%s] %s\n", timestamp, caller, msg)
		l.file.WriteString(line)
	}
}

func (l *fileLogger) Info(format string, args ...interface{}) {
	l.logWithLevel("INFO", format, args...)
}

func (l *fileLogger) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		timestamp := time.Now().Format("06-01-02 15:04:05.0")
		caller := getCaller(2)
		line := fmt.Sprintf("[%s] [WARN ] [%s] %s\n", timestamp, caller, msg)
		l.file.WriteString(line)
	}
}

func (l *fileLogger) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		timestamp := time.Now().Format("06-01-02 15:04:05.0")
		caller := getCaller(2)
		line := fmt.Sprintf("[%s] [ERROR] [%s] %s\n", timestamp, caller, msg)
		l.file.WriteString(line)
	}
}

func (l *fileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logger instance
var globalLogger Logger = NewStdout(os.Getenv(constants.EnvDebug) == "1")

// SetGlobal sets the global logger instance.
func SetGlobal(l Logger) {
	globalLogger = l
}

// Global returns the global logger instance.
func Global() Logger {
	return globalLogger
}

// Debug logs debug information using the global logger.
func Debug(format string, args ...interface{}) {
	globalLogger.Debug(format, args...)
}

// Info logs informational message using the global logger.
func Info(format string, args ...interface{}) {
	globalLogger.Info(format, args...)
}

// Warn logs a warning using the global logger.
func Warn(format string, args ...interface{}) {
	globalLogger.Warn(format, args...)
}

// Error logs an error using the global logger.
func Error(format string, args ...interface{}) {
	globalLogger.Error(format, args...)
}
