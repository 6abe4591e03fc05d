package mulog

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// NewWriterSink returns the reference sink bound to l, writing lines of
// the form "LEVEL: message" to w. It re-checks l.WillLog and performs
// no I/O below the threshold, returning 0. On success it returns the
// total number of bytes written across the four writes (level name,
// ": ", message, newline); the first failed write aborts the remaining
// ones and yields -1.
func NewWriterSink[P Payload](l *Logger[P], w io.Writer) Sink[P] {
	return func(level Level, payload P) int {
		if !l.WillLog(level) {
			return 0
		}
		total := 0
		for _, part := range [...]string{level.String(), ": ", render(payload), "\n"} {
			n, err := io.WriteString(w, part)
			if err != nil {
				return -1
			}
			total += n
		}
		return total
	}
}

// StdoutSink returns the reference sink writing to os.Stdout.
func StdoutSink[P Payload](l *Logger[P]) Sink[P] {
	return NewWriterSink(l, os.Stdout)
}

var levelColors = map[Level]*color.Color{
	TraceLevel: color.New(color.FgHiBlack),
	DebugLevel: color.New(color.FgCyan),
	InfoLevel:  color.New(color.FgGreen),
	WarnLevel:  color.New(color.FgYellow),
	ErrorLevel: color.New(color.FgRed),
	FatalLevel: color.New(color.FgMagenta),
}

// NewColorSink behaves like NewWriterSink but colorizes the level name
// per severity. Unknown levels print uncolored. The byte count includes
// any color escape sequences.
func NewColorSink[P Payload](l *Logger[P], w io.Writer) Sink[P] {
	return func(level Level, payload P) int {
		if !l.WillLog(level) {
			return 0
		}
		name := level.String()
		if c, ok := levelColors[level]; ok {
			name = c.Sprint(name)
		}
		total := 0
		for _, part := range [...]string{name, ": ", render(payload), "\n"} {
			n, err := io.WriteString(w, part)
			if err != nil {
				return -1
			}
			total += n
		}
		return total
	}
}

// Discard returns a sink that drops every message and reports zero
// units written.
func Discard[P Payload]() Sink[P] {
	return func(Level, P) int { return 0 }
}
