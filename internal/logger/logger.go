// Package logger provides leveled, structured logging to a file and
// optionally the console. Console output is off by default so it does not
// interfere with the TUI.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// String returns the string representation of the log level
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel converts a string to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	for lvl, name := range levelNames {
		if s == name {
			return lvl
		}
	}
	return INFO
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// F is a shorthand for creating a Field
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Config holds logger configuration
type Config struct {
	Level    Level
	FilePath string
	MaxSize  int64 // bytes before the file is rotated to .old
	Console  bool
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	path := ""
	if home != "" {
		path = filepath.Join(home, ".taskdeck", "logs", "taskdeck.log")
	}
	return Config{
		Level:    INFO,
		FilePath: path,
		MaxSize:  10 * 1024 * 1024,
		Console:  false,
	}
}

// Logger writes log entries to its configured outputs.
type Logger struct {
	mu     sync.Mutex
	config Config
	file   *os.File
}

var (
	global *Logger
	once   sync.Once
)

// Init initializes the global logger. Subsequent calls are no-ops.
func Init(config Config) error {
	var err error
	once.Do(func() {
		global, err = New(config)
	})
	return err
}

// New creates a new logger instance
func New(config Config) (*Logger, error) {
	l := &Logger{config: config}
	if config.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		if err := l.openFile(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Logger) openFile() error {
	f, err := os.OpenFile(l.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.file = f
	return nil
}

// rotate moves the current file to .old once it exceeds MaxSize.
// Called with the mutex held.
func (l *Logger) rotate() {
	if l.file == nil || l.config.MaxSize <= 0 {
		return
	}
	info, err := l.file.Stat()
	if err != nil || info.Size() < l.config.MaxSize {
		return
	}
	l.file.Close()
	os.Rename(l.config.FilePath, l.config.FilePath+".old")
	if err := l.openFile(); err != nil {
		l.file = nil
	}
}

func (l *Logger) log(level Level, msg string, fields []Field) {
	if level < l.config.Level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.rotate()

	caller := "???"
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	entry := fmt.Sprintf("[%s] %s %s: %s",
		time.Now().Format("2006-01-02 15:04:05.000"), level, caller, msg)
	if len(fields) > 0 {
		entry += " |"
		for _, f := range fields {
			entry += fmt.Sprintf(" %s=%v", f.Key, f.Value)
		}
	}
	entry += "\n"

	if l.file != nil {
		io.WriteString(l.file, entry)
	}
	if l.config.Console {
		io.WriteString(os.Stderr, entry)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Field) { l.log(DEBUG, msg, fields) }

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Field) { l.log(INFO, msg, fields) }

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Field) { l.log(WARN, msg, fields) }

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Field) { l.log(ERROR, msg, fields) }

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logger functions. Safe to call before Init; entries are dropped.

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	if global != nil {
		global.log(DEBUG, msg, fields)
	}
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	if global != nil {
		global.log(INFO, msg, fields)
	}
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	if global != nil {
		global.log(WARN, msg, fields)
	}
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	if global != nil {
		global.log(ERROR, msg, fields)
	}
}

// Close closes the global logger
func Close() error {
	if global != nil {
		return global.Close()
	}
	return nil
}
