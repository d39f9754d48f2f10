package daylog

import (
	"fmt"
	"os"
	"sync"
)

// Level is the ordinal severity of a log record. Rank grows with
// verbosity: a record is emitted when its level is at or below the
// configured maximum.
type Level int64

const (
	LevelOff Level = iota
	LevelError
	LevelInfo
	LevelWarn
	LevelDebug
	LevelTrace
)

// LevelEnvVar selects the process-wide maximum level.
const LevelEnvVar = "DAYLOG_LEVEL"

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "OFF"
	case LevelError:
		return "ERROR"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return fmt.Sprintf("LEVEL(%d)", int64(l))
	}
}

// ParseLevel maps a level name to its Level. The mapping is
// case-sensitive; any unrecognized value, including the empty
// string, falls back to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "off":
		return LevelOff
	case "trace":
		return LevelTrace
	default:
		return LevelInfo
	}
}

var (
	envLevelOnce sync.Once
	envLevel     Level
)

// LevelFromEnv returns the maximum level selected by LevelEnvVar.
// The environment is read once per process.
func LevelFromEnv() Level {
	envLevelOnce.Do(func() {
		envLevel = ParseLevel(os.Getenv(LevelEnvVar))
	})
	return envLevel
}
