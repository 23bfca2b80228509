// Package logger provides a small leveled logging interface used across the
// frontend. Messages are conventionally prefixed with the emitting component,
// e.g. "[MoviesAPI] failed to list movies: ...".
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger defines the logging interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
}

// Level represents logging levels
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
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

type logger struct {
	mu      sync.RWMutex
	level   Level
	loggers map[Level]*log.Logger
	exit    func(int)
}

// New creates a logger writing debug/info/warn to stdout and errors to
// stderr, with the level taken from LOG_LEVEL.
func New() Logger {
	return NewWithOutput(ParseLevel(os.Getenv("LOG_LEVEL")), os.Stdout, os.Stderr)
}

// NewWithOutput creates a logger at the given level writing to the provided
// writers. Passing the same writer twice interleaves all levels in one stream.
func NewWithOutput(level Level, out, errOut io.Writer) Logger {
	return &logger{
		level: level,
		loggers: map[Level]*log.Logger{
			LevelDebug: log.New(out, "[DEBUG] ", log.LstdFlags|log.Lshortfile),
			LevelInfo:  log.New(out, "[INFO] ", log.LstdFlags),
			LevelWarn:  log.New(out, "[WARN] ", log.LstdFlags),
			LevelError: log.New(errOut, "[ERROR] ", log.LstdFlags|log.Lshortfile),
		},
		exit: os.Exit,
	}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() Logger {
	return NewWithOutput(LevelError+1, io.Discard, io.Discard)
}

// ParseLevel converts a string log level to a Level, defaulting to info.
func ParseLevel(levelStr string) Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
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

func (l *logger) shouldLog(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

// write emits msg; depth is the number of frames between the caller of the
// public method and write itself.
func (l *logger) write(depth int, level Level, msg string) {
	l.mu.RLock()
	out := l.loggers[level]
	l.mu.RUnlock()

	out.Output(depth+1, msg)
}

func (l *logger) output(level Level, v ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	l.write(3, level, fmt.Sprint(v...))
}

func (l *logger) outputf(level Level, format string, v ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	l.write(3, level, fmt.Sprintf(format, v...))
}

func (l *logger) Debug(v ...interface{}) { l.output(LevelDebug, v...) }

func (l *logger) Debugf(format string, v ...interface{}) { l.outputf(LevelDebug, format, v...) }

func (l *logger) Info(v ...interface{}) { l.output(LevelInfo, v...) }

func (l *logger) Infof(format string, v ...interface{}) { l.outputf(LevelInfo, format, v...) }

func (l *logger) Warn(v ...interface{}) { l.output(LevelWarn, v...) }

func (l *logger) Warnf(format string, v ...interface{}) { l.outputf(LevelWarn, format, v...) }

func (l *logger) Error(v ...interface{}) { l.output(LevelError, v...) }

func (l *logger) Errorf(format string, v ...interface{}) { l.outputf(LevelError, format, v...) }

// Fatal logs at error level regardless of the configured level, then exits.
func (l *logger) Fatal(v ...interface{}) {
	l.write(2, LevelError, fmt.Sprint(v...))
	l.exit(1)
}

// Fatalf is the formatted variant of Fatal.
func (l *logger) Fatalf(format string, v ...interface{}) {
	l.write(2, LevelError, fmt.Sprintf(format, v...))
	l.exit(1)
}
