package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// LevelWriter adapts a Client for use as a zerolog output.
//
//	log := zerolog.New(logging.LevelWriter{Client: logging.Automatic()})
type LevelWriter struct {
	Client Client
}

var _ zerolog.LevelWriter = LevelWriter{}

// Write logs p at LevelInfo.
func (w LevelWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel logs p at the host level matching l. The trailing newline
// zerolog appends is dropped.
func (w LevelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if err := w.Client.Log(levelFromZerolog(l), strings.TrimRight(string(p), "\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}

func levelFromZerolog(l zerolog.Level) Level {
	switch l {
	case zerolog.TraceLevel:
		return LevelTrace
	case zerolog.DebugLevel:
		return LevelDebug
	case zerolog.WarnLevel:
		return LevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return LevelError
	default:
		return LevelInfo
	}
}
