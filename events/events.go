package events

import (
	wapc "github.com/wapc/wapc-guest-tinygo"
	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	proto "github.com/wascc/actor-sdk-go/proto/events"
)

// CapabilityID routes host calls to the bound event stream provider.
const CapabilityID = "wascc:eventstreams"

// Operation names understood by event stream providers.
const (
	OpWriteEvent  = "WriteEvent"
	OpQueryStream = "QueryStream"
)

// Client defines the event stream capability interface.
type Client interface {
	// WriteEvent appends values to stream and returns the provider assigned event id.
	WriteEvent(stream string, values map[string]string) (string, error)

	// ReadAll returns every event on stream.
	ReadAll(stream string) ([]Event, error)

	// ReadLimit returns at most limit events from stream.
	ReadLimit(stream string, limit uint64) ([]Event, error)

	// ReadRange returns at most limit events from stream within r. A limit of zero means no limit.
	ReadRange(stream string, r TimeRange, limit uint64) ([]Event, error)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the binding used for host calls.
	SDKConfig actor.RuntimeConfig

	// Codec selects the wire format. Nil uses codec.Default.
	Codec codec.Codec

	// HostCall overrides the waPC host function used for event stream operations.
	HostCall actor.HostCall
}

// EventsClient is the event stream capability client implementation.
type EventsClient struct {
	binding  string
	codec    codec.Codec
	hostCall actor.HostCall
}

// Ensure EventsClient satisfies the Client interface at compile time.
var _ Client = (*EventsClient)(nil)

// New creates an event stream client with binding and codec defaults.
func New(config Config) (*EventsClient, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &EventsClient{
		binding:  config.SDKConfig.BindingOrDefault(),
		codec:    codec.OrDefault(config.Codec),
		hostCall: hostCall,
	}, nil
}

// WriteEvent appends values to stream and returns the provider assigned event id.
func (c *EventsClient) WriteEvent(stream string, values map[string]string) (string, error) {
	var resp proto.WriteResponse
	ev := &proto.Event{Stream: stream, Values: values}
	if err := actor.Invoke(c.hostCall, c.codec, c.binding, CapabilityID, OpWriteEvent, ev, &resp); err != nil {
		return "", err
	}
	return resp.GetEventId(), nil
}

// ReadAll returns every event on stream.
func (c *EventsClient) ReadAll(stream string) ([]Event, error) {
	return c.query(&proto.StreamQuery{StreamId: stream})
}

// ReadLimit returns at most limit events from stream. Fewer are returned
// when the stream is shorter.
func (c *EventsClient) ReadLimit(stream string, limit uint64) ([]Event, error) {
	return c.query(&proto.StreamQuery{StreamId: stream, Count: limit})
}

// ReadRange returns at most limit events from stream within r.
func (c *EventsClient) ReadRange(stream string, r TimeRange, limit uint64) ([]Event, error) {
	return c.query(&proto.StreamQuery{
		StreamId: stream,
		Range:    &proto.TimeRange{MinTime: r.MinTime, MaxTime: r.MaxTime},
		Count:    limit,
	})
}

func (c *EventsClient) query(q *proto.StreamQuery) ([]Event, error) {
	var resp proto.StreamResults
	if err := actor.Invoke(c.hostCall, c.codec, c.binding, CapabilityID, OpQueryStream, q, &resp); err != nil {
		return nil, err
	}
	return eventsFromProto(resp.GetEvents()), nil
}
