package mulog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// recordingWriter keeps each Write call as a separate part.
type recordingWriter struct {
	parts []string
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	r.parts = append(r.parts, string(p))
	return len(p), nil
}

// failingWriter fails on the write call numbered failOn (1-based).
type failingWriter struct {
	calls  int
	failOn int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	if f.calls == f.failOn {
		return 0, errors.New("write failed")
	}
	return len(p), nil
}

func TestWriterSink_WriteSequence(t *testing.T) {
	l := New[string]()
	rec := &recordingWriter{}
	sink := NewWriterSink(l, rec)
	l.SetSink(sink)
	l.SetThreshold(InfoLevel)

	n := sink(InfoLevel, "Hello, world!")

	want := []string{"INFO", ": ", "Hello, world!", "\n"}
	if len(rec.parts) != len(want) {
		t.Fatalf("got %d writes %q, want %d", len(rec.parts), rec.parts, len(want))
	}
	total := 0
	for i, part := range want {
		if rec.parts[i] != part {
			t.Fatalf("write %d = %q, want %q", i, rec.parts[i], part)
		}
		total += len(part)
	}
	if n != total {
		t.Fatalf("sink returned %d, want the summed byte count %d", n, total)
	}
}

func TestWriterSink_BelowThresholdNoWrites(t *testing.T) {
	l := New[string]()
	rec := &recordingWriter{}
	sink := NewWriterSink(l, rec)
	l.SetSink(sink)
	l.SetThreshold(InfoLevel)

	if n := sink(DebugLevel, "Hello"); n != 0 {
		t.Fatalf("below-threshold sink returned %d, want 0", n)
	}
	if len(rec.parts) != 0 {
		t.Fatalf("below-threshold sink performed writes: %q", rec.parts)
	}
}

func TestWriterSink_RendersEntryAtOutput(t *testing.T) {
	l := New[Entry]()
	var buf bytes.Buffer
	sink := NewWriterSink(l, &buf)
	l.SetSink(sink)
	l.SetThreshold(TraceLevel)

	sink(WarnLevel, Msgf("disk usage at %d%%", 93))
	if got := buf.String(); got != "WARN: disk usage at 93%\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestWriterSink_WriteFailureShortCircuits(t *testing.T) {
	l := New[string]()
	fw := &failingWriter{failOn: 2}
	sink := NewWriterSink(l, fw)
	l.SetSink(sink)
	l.SetThreshold(TraceLevel)

	if n := sink(InfoLevel, "x"); n >= 0 {
		t.Fatalf("sink returned %d on write failure, want a negative value", n)
	}
	// The failing second write must abort the remaining two.
	if fw.calls != 2 {
		t.Fatalf("writer saw %d calls, want 2 (short-circuit after failure)", fw.calls)
	}
}

func TestWriterSink_UnknownLevelName(t *testing.T) {
	l := New[string]()
	var buf bytes.Buffer
	sink := NewWriterSink(l, &buf)
	l.SetSink(sink)
	l.SetThreshold(TraceLevel)

	sink(Level(42), "odd")
	if got := buf.String(); got != "UNKNOWN: odd\n" {
		t.Fatalf("output = %q, want %q", got, "UNKNOWN: odd\n")
	}
}

func TestColorSink_ColorizesLevelName(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	l := New[string]()
	var buf bytes.Buffer
	sink := NewColorSink(l, &buf)
	l.SetSink(sink)
	l.SetThreshold(TraceLevel)

	n := sink(ErrorLevel, "boom")
	got := buf.String()
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI escapes in output, got %q", got)
	}
	if !strings.Contains(got, "ERROR") || !strings.Contains(got, ": boom\n") {
		t.Fatalf("output = %q", got)
	}
	if n != buf.Len() {
		t.Fatalf("sink returned %d, want %d bytes written", n, buf.Len())
	}
}

func TestColorSink_BelowThresholdNoWrites(t *testing.T) {
	l := New[string]()
	rec := &recordingWriter{}
	sink := NewColorSink(l, rec)
	l.SetSink(sink)
	l.SetThreshold(ErrorLevel)

	if n := sink(InfoLevel, "quiet"); n != 0 {
		t.Fatalf("below-threshold color sink returned %d, want 0", n)
	}
	if len(rec.parts) != 0 {
		t.Fatalf("below-threshold color sink performed writes: %q", rec.parts)
	}
}

func TestDiscard_DropsEverything(t *testing.T) {
	l := New[string]()
	l.SetSink(Discard[string]())
	l.SetThreshold(TraceLevel)

	if n := l.Sink()(FatalLevel, "dropped"); n != 0 {
		t.Fatalf("Discard sink returned %d, want 0", n)
	}
	// WillLog is still true: a discarding sink is installed output.
	if !l.WillLog(FatalLevel) {
		t.Fatalf("WillLog should be true with the Discard sink installed")
	}
}
