package logging

import "strconv"

// Level is a host log severity. Lower values are more severe.
type Level uint32

// Levels understood by the host logging provider.
const (
	LevelError Level = 1
	LevelWarn  Level = 2
	LevelInfo  Level = 3
	LevelDebug Level = 4
	LevelTrace Level = 5
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "level(" + strconv.FormatUint(uint64(l), 10) + ")"
	}
}
