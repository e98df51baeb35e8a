package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// zapCore forwards zap entries to a Client. Fields are rendered as a JSON
// object appended to the message.
type zapCore struct {
	zapcore.LevelEnabler
	client Client
	enc    zapcore.Encoder
}

// NewZapCore returns a zapcore.Core that writes enabled entries to c. Zap
// levels below Debug map to LevelTrace; DPanic, Panic and Fatal map to LevelError.
func NewZapCore(c Client, enab zapcore.LevelEnabler) zapcore.Core {
	return &zapCore{
		LevelEnabler: enab,
		client:       c,
		enc: zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			NameKey:        "logger",
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		}),
	}
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	enc := c.enc.Clone()
	for _, f := range fields {
		f.AddTo(enc)
	}
	return &zapCore{LevelEnabler: c.LevelEnabler, client: c.client, enc: enc}
}

func (c *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	rendered := strings.TrimSpace(buf.String())
	buf.Free()

	body := ent.Message
	if rendered != "{}" {
		body += " " + rendered
	}
	return c.client.Log(levelFromZap(ent.Level), body)
}

// Sync is a no-op; every Write is a completed host call.
func (c *zapCore) Sync() error { return nil }

func levelFromZap(l zapcore.Level) Level {
	switch {
	case l < zapcore.DebugLevel:
		return LevelTrace
	case l == zapcore.DebugLevel:
		return LevelDebug
	case l == zapcore.InfoLevel:
		return LevelInfo
	case l == zapcore.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}
