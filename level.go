package mozlog

import "fmt"

// Level is the verbosity of a log event, ordered from most verbose (Trace)
// to most urgent (Error).
type Level int8

// Log levels, least to most urgent.
const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// Severity returns the syslog severity for the level. See
// https://en.wikipedia.org/wiki/Syslog#Severity_levels. Lower numbers are
// more urgent: error→3, warn→4, info→5, debug→6, trace→7.
func (l Level) Severity() uint32 {
	switch l {
	case ErrorLevel:
		return 3
	case WarnLevel:
		return 4
	case InfoLevel:
		return 5
	case DebugLevel:
		return 6
	case TraceLevel:
		return 7
	default:
		return 5
	}
}

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
