package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultPath is the log file used when none is configured, relative to the working directory.
const DefaultPath = "logs/viewer.txt"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Level filters what gets recorded.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a level. Anything else is info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger keeps recent lines in memory (for the console) and appends them to a file on disk.
// Safe for concurrent use: asset loaders log from their own goroutines.
type Logger struct {
	mu    sync.Mutex
	path  string
	level Level
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path (DefaultPath when empty) and ensures its directory exists.
// An unwritable path only disables the file; lines are still kept in memory.
func New(path string, level Level) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, level: level, now: time.Now}
}

// SetLevel changes the minimum level recorded.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Log records a line at info level. Console input is echoed through it.
func (l *Logger) Log(line string) {
	l.write(LevelInfo, line)
}

func (l *Logger) Debugf(format string, v ...any) { l.write(LevelDebug, fmt.Sprintf(format, v...)) }
func (l *Logger) Infof(format string, v ...any)  { l.write(LevelInfo, fmt.Sprintf(format, v...)) }
func (l *Logger) Warnf(format string, v ...any)  { l.write(LevelWarn, fmt.Sprintf(format, v...)) }
func (l *Logger) Errorf(format string, v ...any) { l.write(LevelError, fmt.Sprintf(format, v...)) }

// write prefixes the line with [timestamp] and, above info, the level name.
func (l *Logger) write(level Level, line string) {
	l.mu.Lock()
	if level < l.level {
		l.mu.Unlock()
		return
	}
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] "
	if level != LevelInfo {
		stamped += level.String() + ": "
	}
	stamped += line
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	path := l.path
	l.mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
