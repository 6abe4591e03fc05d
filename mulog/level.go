package mulog

import (
	"fmt"
	"strings"
)

// Level defines log severity, ordered from least to most severe.
type Level int

const (
	// TraceLevel is the most verbose level.
	TraceLevel Level = iota
	// DebugLevel enables debug logging.
	DebugLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// FatalLevel is the most severe level. Logging at FatalLevel does
	// not terminate the process.
	FatalLevel
)

// DefaultThreshold is the threshold a new Logger starts with.
const DefaultThreshold = InfoLevel

var levelNames = [...]string{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"FATAL",
}

// String returns the fixed display name of the level, or "UNKNOWN" for
// any value outside the defined range. It never fails.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// AllLevels returns all supported levels in ascending severity order.
func AllLevels() []Level {
	return []Level{
		TraceLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		FatalLevel,
	}
}

// ParseLevel converts a level name such as "INFO" or "warn" into a
// Level. Matching is case-insensitive and ignores surrounding space.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	}
	return DefaultThreshold, fmt.Errorf("unknown log level %q", s)
}
