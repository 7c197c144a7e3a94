// ABOUTME: Leveled logging on slog levels, rendered by charmbracelet/log
// ABOUTME: Global level and output; Named loggers prefix component output

package log

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  atomic.Int64
	output atomic.Pointer[charmlog.Logger]
)

func init() {
	level.Store(int64(LevelInfo))
	output.Store(newLogger(os.Stderr))
}

// newLogger builds the backing logger. Filtering happens in this package,
// so the backend accepts everything.
func newLogger(w io.Writer) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           charmlog.DebugLevel,
	})
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// ParseLevel maps "debug", "info", "warn" or "error" to a level.
// Unknown names yield LevelInfo and false.
func ParseLevel(name string) (slog.Level, bool) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return LevelInfo, false
	}
	return l, true
}

// SetOutput redirects all log output to w. A full-screen TUI host points
// this at a file so log lines do not tear the rendered frame.
func SetOutput(w io.Writer) {
	output.Store(newLogger(w))
}

// Logger is a prefixed view of the global logger.
type Logger struct {
	prefix string
}

// Named returns a Logger whose lines carry prefix.
func Named(prefix string) Logger {
	return Logger{prefix: prefix}
}

func (l Logger) Debug(format string, args ...any) { emit(LevelDebug, l.prefix, format, args) }
func (l Logger) Info(format string, args ...any)  { emit(LevelInfo, l.prefix, format, args) }
func (l Logger) Warn(format string, args ...any)  { emit(LevelWarn, l.prefix, format, args) }
func (l Logger) Error(format string, args ...any) { emit(LevelError, l.prefix, format, args) }

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) { emit(LevelDebug, "", format, args) }

// Info logs an info message if the level allows it.
func Info(format string, args ...any) { emit(LevelInfo, "", format, args) }

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) { emit(LevelWarn, "", format, args) }

// Error logs an error message (always emitted).
func Error(format string, args ...any) { emit(LevelError, "", format, args) }

func emit(l slog.Level, prefix, format string, args []any) {
	if l < LevelError && slog.Level(level.Load()) > l {
		return
	}
	out := output.Load()
	if prefix != "" {
		out = out.WithPrefix(prefix)
	}
	switch l {
	case LevelDebug:
		out.Debugf(format, args...)
	case LevelInfo:
		out.Infof(format, args...)
	case LevelWarn:
		out.Warnf(format, args...)
	default:
		out.Errorf(format, args...)
	}
}
