package extras

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	wapc "github.com/wapc/wapc-guest-tinygo"
	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	proto "github.com/wascc/actor-sdk-go/proto/extras"
)

// CapabilityID routes host calls to the host's built-in extras provider.
const CapabilityID = "wascc:extras"

// Operation names understood by the extras provider.
const (
	OpRequestGUID     = "RequestGuid"
	OpRequestRandom   = "RequestRandom"
	OpRequestSequence = "RequestSequence"
)

var (
	// ErrMissingGUID is returned when the host answers a GUID request without one.
	ErrMissingGUID = errors.New("host returned no guid")

	// ErrInvalidGUID is returned when the host's GUID is not a valid UUID.
	ErrInvalidGUID = errors.New("host returned an invalid guid")
)

// Client defines the extras capability interface.
type Client interface {
	// Random returns a number between min and max as chosen by the host.
	Random(min, max uint32) (uint32, error)

	// GUID returns a newly generated UUID string.
	GUID() (string, error)

	// SequenceNumber returns the next value of a host-wide sequence. It is
	// unique within the host only.
	SequenceNumber() (uint64, error)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the binding used for host calls.
	SDKConfig actor.RuntimeConfig

	// Codec selects the wire format. Nil uses codec.Default.
	Codec codec.Codec

	// HostCall overrides the waPC host function used for extras operations.
	HostCall actor.HostCall
}

// ExtrasClient is the extras capability client implementation.
type ExtrasClient struct {
	binding  string
	codec    codec.Codec
	hostCall actor.HostCall
}

// Ensure ExtrasClient satisfies the Client interface at compile time.
var _ Client = (*ExtrasClient)(nil)

// New creates an extras client with binding and codec defaults.
func New(config Config) (*ExtrasClient, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &ExtrasClient{
		binding:  config.SDKConfig.BindingOrDefault(),
		codec:    codec.OrDefault(config.Codec),
		hostCall: hostCall,
	}, nil
}

func (c *ExtrasClient) generate(op string, req *proto.GeneratorRequest) (*proto.GeneratorResult, error) {
	var resp proto.GeneratorResult
	if err := actor.Invoke(c.hostCall, c.codec, c.binding, CapabilityID, op, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Random returns a number between min and max. Range semantics are the host's.
func (c *ExtrasClient) Random(min, max uint32) (uint32, error) {
	resp, err := c.generate(OpRequestRandom, &proto.GeneratorRequest{Random: true, Min: min, Max: max})
	if err != nil {
		return 0, err
	}
	return resp.GetRandomNumber(), nil
}

// GUID returns a newly generated UUID string exactly as the host formatted it.
func (c *ExtrasClient) GUID() (string, error) {
	resp, err := c.generate(OpRequestGUID, &proto.GeneratorRequest{Guid: true})
	if err != nil {
		return "", err
	}

	if resp.GetGuid() == "" {
		return "", errors.Join(actor.ErrHostResponseInvalid, ErrMissingGUID)
	}
	if err := uuid.Validate(resp.GetGuid()); err != nil {
		return "", errors.Join(actor.ErrHostResponseInvalid, fmt.Errorf("%w: %q", ErrInvalidGUID, resp.GetGuid()), err)
	}
	return resp.GetGuid(), nil
}

// SequenceNumber returns the next value of a host-wide sequence.
func (c *ExtrasClient) SequenceNumber() (uint64, error) {
	resp, err := c.generate(OpRequestSequence, &proto.GeneratorRequest{Sequence: true})
	if err != nil {
		return 0, err
	}
	return resp.GetSequenceNumber(), nil
}
