package record

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is the severity of a record. The zero value is LevelError.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// LevelCount is the number of levels and the length of every counter array.
const LevelCount = 5

// SlogLevelTrace is the slog level used for Trace records.
const SlogLevelTrace = slog.Level(-8)

// Levels lists every level in counter order.
var Levels = [LevelCount]Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}

// Counts holds one counter per level.
type Counts [LevelCount]uint64

// Total returns the sum of all counters.
func (c Counts) Total() uint64 {
	var sum uint64
	for _, n := range c {
		sum += n
	}
	return sum
}

// String makes Level satisfy the fmt.Stringer interface.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Valid reports whether l is one of the five known levels.
func (l Level) Valid() bool {
	return l >= LevelError && l <= LevelTrace
}

// SlogLevel maps l onto the slog severity scale.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	default:
		return SlogLevelTrace
	}
}

// FromSlog maps an slog level onto the nearest Level at or below it.
func FromSlog(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return LevelError
	case l >= slog.LevelWarn:
		return LevelWarn
	case l >= slog.LevelInfo:
		return LevelInfo
	case l >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// ParseLevel accepts the level names case-insensitively. "warning" is
// accepted as an alias for warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelError, fmt.Errorf("unknown level %q", s)
}
