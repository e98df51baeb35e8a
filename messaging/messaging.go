package messaging

import (
	"time"

	wapc "github.com/wapc/wapc-guest-tinygo"
	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	proto "github.com/wascc/actor-sdk-go/proto/messaging"
)

// CapabilityID routes host calls to the bound message broker provider.
const CapabilityID = "wascc:messaging"

// Operation names understood by message broker providers.
const (
	OpPublish = "Publish"
	OpRequest = "Request"

	// OpDeliverMessage is the inbound operation carrying a BrokerMessage to the actor.
	OpDeliverMessage = "DeliverMessage"
)

// Client defines the message broker capability interface.
type Client interface {
	// Publish sends payload to subject. An empty replyTo means no reply is expected.
	Publish(subject, replyTo string, payload []byte) error

	// Request sends payload to subject and returns the reply body. The broker
	// enforces timeout.
	Request(subject string, payload []byte, timeout time.Duration) ([]byte, error)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the binding used for host calls.
	SDKConfig actor.RuntimeConfig

	// Codec selects the wire format. Nil uses codec.Default.
	Codec codec.Codec

	// HostCall overrides the waPC host function used for broker operations.
	HostCall actor.HostCall
}

// MessagingClient is the message broker capability client implementation.
type MessagingClient struct {
	binding  string
	codec    codec.Codec
	hostCall actor.HostCall
}

// Ensure MessagingClient satisfies the Client interface at compile time.
var _ Client = (*MessagingClient)(nil)

// New creates a message broker client with binding and codec defaults.
func New(config Config) (*MessagingClient, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &MessagingClient{
		binding:  config.SDKConfig.BindingOrDefault(),
		codec:    codec.OrDefault(config.Codec),
		hostCall: hostCall,
	}, nil
}

// Publish sends payload to subject. Any reply payload from the host is ignored.
func (c *MessagingClient) Publish(subject, replyTo string, payload []byte) error {
	msg := &proto.BrokerMessage{Subject: subject, ReplyTo: replyTo, Body: payload}
	return actor.Invoke(c.hostCall, c.codec, c.binding, CapabilityID, OpPublish, msg, nil)
}

// Request sends payload to subject and returns the host's reply bytes as is.
// The timeout is passed to the broker in milliseconds.
func (c *MessagingClient) Request(subject string, payload []byte, timeout time.Duration) ([]byte, error) {
	msg := &proto.RequestMessage{Subject: subject, Body: payload, TimeoutMs: timeout.Milliseconds()}
	return actor.Dispatch(c.hostCall, c.codec, c.binding, CapabilityID, OpRequest, msg)
}

// DecodeBrokerMessage decodes an inbound DeliverMessage payload. A nil codec
// uses codec.Default.
func DecodeBrokerMessage(c codec.Codec, payload []byte) (BrokerMessage, error) {
	var msg proto.BrokerMessage
	if err := actor.Decode(codec.OrDefault(c), payload, &msg); err != nil {
		return BrokerMessage{}, err
	}
	return brokerMessageFromProto(&msg), nil
}
