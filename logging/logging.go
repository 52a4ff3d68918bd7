// Package logging defines the log sink the seastate library writes to.
//
// The library itself only depends on the Logger interface, so an embedding
// application can route messages anywhere a formatted text line can go: a
// terminal, a file, or a GUI log widget.
package logging

import "sync/atomic"

// Level represents log levels.
type Level int32

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level, defaulting to InfoLevel.
func ParseLevel(name string) Level {
	switch name {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Fields carries structured context attached to a log line.
type Fields map[string]any

// Logger is the sink interface the library expects.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields.
	WithFields(fields Fields) Logger

	// SetLevel sets the minimum level that is emitted.
	SetLevel(level Level)
}

var global atomic.Pointer[loggerBox]

type loggerBox struct{ l Logger }

func init() {
	global.Store(&loggerBox{l: NewDefaultLogger()})
}

// SetGlobal replaces the global logger. A nil logger installs a no-op sink.
func SetGlobal(l Logger) {
	if l == nil {
		l = NoOp{}
	}
	global.Store(&loggerBox{l: l})
}

// Global returns the current global logger.
func Global() Logger {
	return global.Load().l
}

// NoOp discards everything.
type NoOp struct{}

func (NoOp) Debug(string, ...Fields)        {}
func (NoOp) Info(string, ...Fields)         {}
func (NoOp) Warn(string, ...Fields)         {}
func (NoOp) Error(error, string, ...Fields) {}
func (n NoOp) WithFields(Fields) Logger     { return n }
func (NoOp) SetLevel(Level)                 {}
