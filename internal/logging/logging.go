// Package logging provides the leveled, component-scoped logger used across
// ledit. Records are written in logfmt through log15.
//
// The editor draws on the terminal, so the default logger discards
// everything; programs route logs to a file or stderr explicitly.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/inconshreveable/log15"
)

// Level represents the severity level of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
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

// ParseLevel parses a level name, case-insensitively. Unknown names
// return LevelInfo and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

func (l Level) lvl() log15.Lvl {
	switch l {
	case LevelDebug:
		return log15.LvlDebug
	case LevelWarn:
		return log15.LvlWarn
	case LevelError:
		return log15.LvlError
	default:
		return log15.LvlInfo
	}
}

// Config configures the logger.
type Config struct {
	// Level is the minimum level written.
	Level Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is attached to every record as the app field.
	Prefix string
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Output: os.Stderr,
		Prefix: "ledit",
	}
}

// Logger is a leveled logger with printf-style messages and key/value
// fields. A nil *Logger discards everything.
type Logger struct {
	log log15.Logger
}

// Discard is a logger that writes nothing.
var Discard = &Logger{}

// New creates a logger from cfg.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var ctx []any
	if cfg.Prefix != "" {
		ctx = append(ctx, "app", cfg.Prefix)
	}
	l := log15.New(ctx...)
	l.SetHandler(log15.LvlFilterHandler(cfg.Level.lvl(),
		log15.StreamHandler(cfg.Output, log15.LogfmtFormat())))

	return &Logger{log: l}
}

// Enabled reports whether the logger writes anything.
func (l *Logger) Enabled() bool {
	return l != nil && l.log != nil
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	if !l.Enabled() {
		return l
	}
	return &Logger{log: l.log.New(key, value)}
}

// WithFields returns a new logger with the given fields added, in key
// order.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if !l.Enabled() || len(fields) == 0 {
		return l
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ctx := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		ctx = append(ctx, k, fields[k])
	}
	return &Logger{log: l.log.New(ctx...)}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	if l.Enabled() {
		l.log.Debug(format(msg, args))
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	if l.Enabled() {
		l.log.Info(format(msg, args))
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	if l.Enabled() {
		l.log.Warn(format(msg, args))
	}
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	if l.Enabled() {
		l.log.Error(format(msg, args))
	}
}

func format(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
