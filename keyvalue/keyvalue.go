package keyvalue

import (
	"time"

	wapc "github.com/wapc/wapc-guest-tinygo"
	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	proto "github.com/wascc/actor-sdk-go/proto/keyvalue"
)

// CapabilityID routes host calls to the bound key-value provider.
const CapabilityID = "wascc:keyvalue"

// Operation names understood by key-value providers.
const (
	OpGet          = "Get"
	OpSet          = "Set"
	OpAdd          = "Add"
	OpDel          = "Del"
	OpPush         = "Push"
	OpListDel      = "ListItemDelete"
	OpRange        = "Range"
	OpClear        = "Clear"
	OpSetAdd       = "SetAdd"
	OpSetRemove    = "SetRemove"
	OpSetUnion     = "SetUnion"
	OpSetIntersect = "SetIntersection"
	OpSetQuery     = "SetQuery"
	OpKeyExists    = "KeyExists"
)

// Client defines the key-value capability interface. Atomicity, negative
// range indices, and set algebra are all provided by the host store.
type Client interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) (string, bool, error)

	// Set stores value under key. An expires of zero means no expiry.
	Set(key, value string, expires time.Duration) error

	// AtomicAdd adds delta to the integer stored under key and returns the result.
	AtomicAdd(key string, delta int32) (int32, error)

	// Del removes key.
	Del(key string) error

	// Exists reports whether key exists.
	Exists(key string) (bool, error)

	// ListAdd appends item to the list under key and returns the new length.
	ListAdd(key, item string) (int, error)

	// ListDelItem removes item from the list under key and returns the new length.
	ListDelItem(key, item string) (int, error)

	// ListRange returns the list items between start and stopInclusive.
	ListRange(key string, start, stopInclusive int32) ([]string, error)

	// ListClear empties the list under key.
	ListClear(key string) error

	// SetAdd adds member to the set under key and returns the new size.
	SetAdd(key, member string) (int, error)

	// SetRemove removes member from the set under key and returns the new size.
	SetRemove(key, member string) (int, error)

	// SetUnion returns the union of the sets under keys.
	SetUnion(keys ...string) ([]string, error)

	// SetIntersect returns the intersection of the sets under keys.
	SetIntersect(keys ...string) ([]string, error)

	// SetMembers returns the members of the set under key.
	SetMembers(key string) ([]string, error)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the binding used for host calls.
	SDKConfig actor.RuntimeConfig

	// Codec selects the wire format. Nil uses codec.Default.
	Codec codec.Codec

	// HostCall overrides the waPC host function used for key-value operations.
	HostCall actor.HostCall
}

// KVClient is the key-value capability client implementation.
type KVClient struct {
	binding  string
	codec    codec.Codec
	hostCall actor.HostCall
}

// Ensure KVClient satisfies the Client interface at compile time.
var _ Client = (*KVClient)(nil)

// New creates a key-value client with binding and codec defaults.
func New(config Config) (*KVClient, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &KVClient{
		binding:  config.SDKConfig.BindingOrDefault(),
		codec:    codec.OrDefault(config.Codec),
		hostCall: hostCall,
	}, nil
}

func (c *KVClient) invoke(op string, req, resp any) error {
	return actor.Invoke(c.hostCall, c.codec, c.binding, CapabilityID, op, req, resp)
}

// Get returns the value stored under key and whether it exists.
func (c *KVClient) Get(key string) (string, bool, error) {
	var resp proto.GetResponse
	if err := c.invoke(OpGet, &proto.GetRequest{Key: key}, &resp); err != nil {
		return "", false, err
	}
	if !resp.Exists {
		return "", false, nil
	}
	return resp.Value, true, nil
}

// Set stores value under key. Expiry is sent in whole seconds; positive
// durations under a second round up so they are not mistaken for no expiry.
func (c *KVClient) Set(key, value string, expires time.Duration) error {
	return c.invoke(OpSet, &proto.SetRequest{Key: key, Value: value, ExpiresS: expirySeconds(expires)}, nil)
}

// AtomicAdd adds delta to the integer stored under key and returns the result.
func (c *KVClient) AtomicAdd(key string, delta int32) (int32, error) {
	var resp proto.AddResponse
	if err := c.invoke(OpAdd, &proto.AddRequest{Key: key, Value: delta}, &resp); err != nil {
		return 0, err
	}
	return resp.Value, nil
}

// Del removes key.
func (c *KVClient) Del(key string) error {
	return c.invoke(OpDel, &proto.DelRequest{Key: key}, nil)
}

// Exists reports whether key exists.
func (c *KVClient) Exists(key string) (bool, error) {
	var resp proto.GetResponse
	if err := c.invoke(OpKeyExists, &proto.KeyExistsQuery{Key: key}, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}

// ListAdd appends item to the list under key and returns the new length.
func (c *KVClient) ListAdd(key, item string) (int, error) {
	var resp proto.ListResponse
	if err := c.invoke(OpPush, &proto.ListPushRequest{Key: key, Value: item}, &resp); err != nil {
		return 0, err
	}
	return int(resp.NewCount), nil
}

// ListDelItem removes item from the list under key and returns the new length.
func (c *KVClient) ListDelItem(key, item string) (int, error) {
	var resp proto.ListResponse
	if err := c.invoke(OpListDel, &proto.ListDelItemRequest{Key: key, Value: item}, &resp); err != nil {
		return 0, err
	}
	return int(resp.NewCount), nil
}

// ListRange returns the list items between start and stopInclusive.
func (c *KVClient) ListRange(key string, start, stopInclusive int32) ([]string, error) {
	var resp proto.ListRangeResponse
	if err := c.invoke(OpRange, &proto.ListRangeRequest{Key: key, Start: start, Stop: stopInclusive}, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// ListClear empties the list under key.
func (c *KVClient) ListClear(key string) error {
	return c.invoke(OpClear, &proto.ListClearRequest{Key: key}, nil)
}

// SetAdd adds member to the set under key and returns the new size.
func (c *KVClient) SetAdd(key, member string) (int, error) {
	var resp proto.SetOperationResponse
	if err := c.invoke(OpSetAdd, &proto.SetAddRequest{Key: key, Value: member}, &resp); err != nil {
		return 0, err
	}
	return int(resp.NewCount), nil
}

// SetRemove removes member from the set under key and returns the new size.
func (c *KVClient) SetRemove(key, member string) (int, error) {
	var resp proto.SetOperationResponse
	if err := c.invoke(OpSetRemove, &proto.SetRemoveRequest{Key: key, Value: member}, &resp); err != nil {
		return 0, err
	}
	return int(resp.NewCount), nil
}

// SetUnion returns the union of the sets under keys.
func (c *KVClient) SetUnion(keys ...string) ([]string, error) {
	var resp proto.SetQueryResponse
	if err := c.invoke(OpSetUnion, &proto.SetUnionRequest{Keys: keys}, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// SetIntersect returns the intersection of the sets under keys.
func (c *KVClient) SetIntersect(keys ...string) ([]string, error) {
	var resp proto.SetQueryResponse
	if err := c.invoke(OpSetIntersect, &proto.SetIntersectionRequest{Keys: keys}, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// SetMembers returns the members of the set under key.
func (c *KVClient) SetMembers(key string) ([]string, error) {
	var resp proto.SetQueryResponse
	if err := c.invoke(OpSetQuery, &proto.SetQueryRequest{Key: key}, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func expirySeconds(d time.Duration) int32 {
	if d <= 0 {
		return 0
	}
	s := d / time.Second
	if d%time.Second != 0 {
		s++
	}
	if s > time.Duration(1<<31-1) {
		return 1<<31 - 1
	}
	return int32(s)
}
