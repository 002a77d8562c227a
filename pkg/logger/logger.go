package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

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

func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return DEBUG
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

type Logger struct {
	level  Level
	output io.Writer
	prefix string
}

var std *Logger

// Init sets up the process-wide logger. When logPath is set the logger
// writes to that file only: the TUI owns the terminal, so stdout is not
// safe to write to while the program runs.
func Init(logPath string, level string) error {
	if logPath == "" {
		std = &Logger{
			level:  ParseLevel(level),
			output: os.Stderr,
			prefix: "[FRAUDWATCH] ",
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	std = &Logger{
		level:  ParseLevel(level),
		output: file,
		prefix: "[FRAUDWATCH] ",
	}

	return nil
}

func SetLevel(level string) {
	if std != nil {
		std.level = ParseLevel(level)
	}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)

	fmt.Fprintf(l.output, "%s %s %s%s\n", timestamp, levelNames[level], l.prefix, message)
}

func Debug(format string, args ...interface{}) {
	if std != nil {
		std.log(DEBUG, format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if std != nil {
		std.log(INFO, format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if std != nil {
		std.log(WARN, format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if std != nil {
		std.log(ERROR, format, args...)
	}
}

func With(prefix string) *Logger {
	if std == nil {
		return nil
	}
	return &Logger{
		level:  std.level,
		output: std.output,
		prefix: fmt.Sprintf("%s[%s] ", std.prefix, prefix),
	}
}
