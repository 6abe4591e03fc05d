//go:build mulog_off

package mulog

// Built with -tags mulog_off: the package-level API compiles to no-op
// stubs. Getters report defaults, WillLog is always false, and nothing
// is ever dispatched.

var defaultLogger = New[Entry]()

// Default returns an inert logger that never has a sink installed.
func Default() *Logger[Entry] { return defaultLogger }

// SetDefault does nothing in a disabled build.
func SetDefault(*Logger[Entry]) {}

// SetSink does nothing in a disabled build.
func SetSink(Sink[Entry]) {}

// SetThreshold does nothing in a disabled build.
func SetThreshold(Level) {}

// Threshold reports DefaultThreshold in a disabled build.
func Threshold() Level { return DefaultThreshold }

// WillLog reports false in a disabled build.
func WillLog(Level) bool { return false }

// Logf does nothing in a disabled build.
func Logf(Level, string, ...any) {}

// Tracef does nothing in a disabled build.
func Tracef(string, ...any) {}

// Debugf does nothing in a disabled build.
func Debugf(string, ...any) {}

// Infof does nothing in a disabled build.
func Infof(string, ...any) {}

// Warnf does nothing in a disabled build.
func Warnf(string, ...any) {}

// Errorf does nothing in a disabled build.
func Errorf(string, ...any) {}

// Fatalf does nothing in a disabled build. It never terminates the
// process.
func Fatalf(string, ...any) {}
