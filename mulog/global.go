//go:build !mulog_off

package mulog

import "sync"

// Package-level default logger, formatted variant. Swappable so tests
// and embedders can install their own instance.
var (
	defaultMu     sync.RWMutex
	defaultLogger = New[Entry]()
)

// Default returns the package-level logger.
func Default() *Logger[Entry] {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger. A nil logger is
// ignored.
func SetDefault(l *Logger[Entry]) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// SetSink installs a sink on the default logger. Installing nil
// disables output.
func SetSink(sink Sink[Entry]) {
	Default().SetSink(sink)
}

// SetThreshold sets the minimum emitted level on the default logger.
func SetThreshold(level Level) {
	Default().SetThreshold(level)
}

// Threshold returns the default logger's threshold.
func Threshold() Level {
	return Default().Threshold()
}

// WillLog reports whether the default logger would emit at the given
// level.
func WillLog(level Level) bool {
	return Default().WillLog(level)
}

// Logf dispatches a printf-style message to the default logger's sink.
// The format and arguments are passed through unrendered; the sink
// renders them, or not, as it sees fit.
func Logf(level Level, format string, args ...any) {
	Default().Log(level, Entry{Format: format, Args: args})
}

// Tracef logs a trace message through the default logger.
func Tracef(format string, args ...any) {
	Logf(TraceLevel, format, args...)
}

// Debugf logs a debug message through the default logger.
func Debugf(format string, args ...any) {
	Logf(DebugLevel, format, args...)
}

// Infof logs an informational message through the default logger.
func Infof(format string, args ...any) {
	Logf(InfoLevel, format, args...)
}

// Warnf logs a warning message through the default logger.
func Warnf(format string, args ...any) {
	Logf(WarnLevel, format, args...)
}

// Errorf logs an error message through the default logger.
func Errorf(format string, args ...any) {
	Logf(ErrorLevel, format, args...)
}

// Fatalf logs a fatal-severity message through the default logger. It
// does not terminate the process.
func Fatalf(format string, args ...any) {
	Logf(FatalLevel, format, args...)
}
