package logging

import (
	wapc "github.com/wapc/wapc-guest-tinygo"
	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	proto "github.com/wascc/actor-sdk-go/proto/logging"
)

// CapabilityID routes host calls to the bound logging provider.
const CapabilityID = "wascc:logging"

// OpWriteLog is the only logging operation.
const OpWriteLog = "WriteLog"

// Client exposes convenience helpers for sending log entries to the host runtime.
type Client interface {
	Log(level Level, body string) error
	Error(body string) error
	Warn(body string) error
	Info(body string) error
	Debug(body string) error
	Trace(body string) error
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the binding used for host calls.
	SDKConfig actor.RuntimeConfig

	// Codec selects the wire format. Nil uses codec.Default.
	Codec codec.Codec

	// HostCall overrides the waPC host function used for logging operations.
	HostCall actor.HostCall
}

// client implements Client against a fixed binding.
type client struct {
	binding  string
	codec    codec.Codec
	hostCall actor.HostCall
}

// New creates a Client that emits logs through the configured binding.
func New(cfg Config) (Client, error) {
	c := cfg.resolve()
	return &client{binding: cfg.SDKConfig.BindingOrDefault(), codec: c.Codec, hostCall: c.HostCall}, nil
}

func (cfg Config) resolve() Config {
	if cfg.HostCall == nil {
		cfg.HostCall = wapc.HostCall
	}
	cfg.Codec = codec.OrDefault(cfg.Codec)
	return cfg
}

func (c *client) Log(level Level, body string) error {
	return write(c.hostCall, c.codec, c.binding, level, body)
}

func (c *client) Error(body string) error { return c.Log(LevelError, body) }
func (c *client) Warn(body string) error  { return c.Log(LevelWarn, body) }
func (c *client) Info(body string) error  { return c.Log(LevelInfo, body) }
func (c *client) Debug(body string) error { return c.Log(LevelDebug, body) }
func (c *client) Trace(body string) error { return c.Log(LevelTrace, body) }

func write(hc actor.HostCall, c codec.Codec, binding string, level Level, body string) error {
	req := &proto.WriteLogRequest{Level: uint32(level), Body: body}
	return actor.Invoke(hc, c, binding, CapabilityID, OpWriteLog, req, nil)
}
