package mulog

import (
	"fmt"
	"sync"
)

// Payload constrains the message forms a Logger can carry: a
// pre-rendered string, or an Entry rendered later by the sink. The
// choice is made once, when the Logger is instantiated.
type Payload interface {
	string | Entry
}

// Entry is a deferred printf-style message. The Logger passes it
// through untouched; rendering happens in the sink, if at all.
type Entry struct {
	Format string
	Args   []any
}

// Msgf builds an Entry from a format string and its arguments.
func Msgf(format string, args ...any) Entry {
	return Entry{Format: format, Args: args}
}

// Render resolves the entry into its final string form.
func (e Entry) Render() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

// render resolves any payload into a string for output.
func render[P Payload](payload P) string {
	switch v := any(payload).(type) {
	case string:
		return v
	case Entry:
		return v.Render()
	}
	return ""
}

// Sink receives every dispatched message and performs the actual output
// or routing. It returns the number of units written, or a negative
// value to signal a write failure. A sink is expected to re-check
// WillLog on the owning Logger before producing output; Log itself does
// not gate on the threshold, so a sink may also choose to emit
// everything regardless of it.
type Sink[P Payload] func(level Level, payload P) int

// Logger filters messages by severity and dispatches them to one
// pluggable sink. The zero state has no sink installed, so every Log
// call is a silent no-op. Safe for concurrent use.
type Logger[P Payload] struct {
	mu        sync.RWMutex
	sink      Sink[P]
	threshold Level
}

// New returns a Logger with no sink installed and the threshold set to
// DefaultThreshold.
func New[P Payload]() *Logger[P] {
	return &Logger[P]{threshold: DefaultThreshold}
}

// SetSink replaces the installed sink. Installing nil disables all
// output without changing the threshold.
func (l *Logger[P]) SetSink(sink Sink[P]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink = sink
}

// Sink returns the currently installed sink, or nil if none is
// installed.
func (l *Logger[P]) Sink() Sink[P] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sink
}

// SetThreshold replaces the minimum emitted level. Values outside the
// defined range are clamped to the nearest valid level.
func (l *Logger[P]) SetThreshold(level Level) {
	if level < TraceLevel {
		level = TraceLevel
	}
	if level > FatalLevel {
		level = FatalLevel
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = level
}

// Threshold returns the current threshold.
func (l *Logger[P]) Threshold() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.threshold
}

// WillLog reports whether a message at the given level would be
// emitted: a sink must be installed and level must meet the threshold.
// Callers can use it to skip building expensive messages.
func (l *Logger[P]) WillLog(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sink != nil && level >= l.threshold
}

// Log dispatches the payload to the installed sink. With no sink it
// returns immediately. The threshold is NOT consulted here: the payload
// is forwarded unconditionally and the sink re-checks WillLog, so a
// sink that wants every message (an audit trail, say) simply skips the
// check. The sink's return value is discarded.
func (l *Logger[P]) Log(level Level, payload P) {
	l.mu.RLock()
	sink := l.sink
	l.mu.RUnlock()
	if sink == nil {
		return
	}
	sink(level, payload)
}
