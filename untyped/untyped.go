package untyped

import (
	"errors"
	"strings"

	wapc "github.com/wapc/wapc-guest-tinygo"
	actor "github.com/wascc/actor-sdk-go"
)

// ErrInvalidRoute indicates an empty capability or operation name.
var ErrInvalidRoute = errors.New("capability and operation are required")

// Client forwards payloads to any capability without encoding them.
type Client interface {
	// Call sends payload to operation on capability and returns the raw reply.
	Call(capability, operation string, payload []byte) ([]byte, error)
}

// Config holds options for the untyped client.
type Config struct {
	// SDKConfig provides the binding used for host calls.
	SDKConfig actor.RuntimeConfig

	// HostCall overrides the waPC host function.
	HostCall actor.HostCall
}

// UntypedClient is the raw capability client implementation.
type UntypedClient struct {
	binding  string
	hostCall actor.HostCall
}

var _ Client = (*UntypedClient)(nil)

// New creates an untyped client.
func New(config Config) (*UntypedClient, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &UntypedClient{
		binding:  config.SDKConfig.BindingOrDefault(),
		hostCall: hostCall,
	}, nil
}

// Call invokes operation on capability with payload as is. The reply is
// returned undecoded.
func (c *UntypedClient) Call(capability, operation string, payload []byte) ([]byte, error) {
	if strings.TrimSpace(capability) == "" || strings.TrimSpace(operation) == "" {
		return nil, ErrInvalidRoute
	}

	resp, err := c.hostCall(c.binding, capability, operation, payload)
	if err != nil {
		return nil, errors.Join(actor.ErrHostCall, err)
	}
	return resp, nil
}
