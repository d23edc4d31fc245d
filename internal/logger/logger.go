package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger provides TUI-safe logging: everything goes to a file, never to the
// terminal the program is drawing on.
type Logger struct {
	fileLogger *log.Logger
	logFile    *os.File
	mu         sync.Mutex
}

// Init initializes the global logger instance
func Init() error {
	var err error
	once.Do(func() {
		instance, err = newLogger()
	})
	return err
}

// newLogger creates a new logger instance
func newLogger() (*Logger, error) {
	dir := stateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	logPath := filepath.Join(dir, "wisp.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		fileLogger: log.New(logFile, "", log.LstdFlags|log.Lshortfile),
		logFile:    logFile,
	}, nil
}

// stateDir resolves where the log file lives.
// Resolution order: $WISP_STATE_DIR > $XDG_STATE_HOME/wisp > ~/.local/state/wisp
func stateDir() string {
	if dir := os.Getenv("WISP_STATE_DIR"); dir != "" {
		return dir
	}
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "wisp")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "wisp-state")
	}
	return filepath.Join(home, ".local", "state", "wisp")
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if instance != nil {
		instance.log("INFO", format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if instance != nil {
		instance.log("ERROR", format, args...)
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if instance != nil {
		instance.log("DEBUG", format, args...)
	}
}

// log writes a formatted message to the log file
func (l *Logger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	l.fileLogger.Printf("[%s] %s", level, message)
}

// Close closes the log file
func Close() error {
	if instance != nil && instance.logFile != nil {
		return instance.logFile.Close()
	}
	return nil
}

// SetOutput allows changing the output destination (useful for testing)
func SetOutput(w io.Writer) {
	if instance != nil {
		instance.mu.Lock()
		defer instance.mu.Unlock()
		instance.fileLogger.SetOutput(w)
	}
}
