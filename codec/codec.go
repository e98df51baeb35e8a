package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"google.golang.org/protobuf/proto"
)

// Codec serializes request and response messages exchanged with the host.
type Codec interface {
	// Name identifies the wire format.
	Name() string

	// Marshal encodes v into its wire representation.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v, which must be a pointer.
	Unmarshal(data []byte, v any) error
}

var (
	// ErrNotProtoMessage is returned by Protobuf for values that are not generated protobuf messages.
	ErrNotProtoMessage = errors.New("value does not implement proto.Message")

	// ErrEmptyPayload is returned by CBOR when asked to decode zero bytes.
	ErrEmptyPayload = errors.New("payload is empty")
)

var (
	// CBOR is the compact self-describing binary format. Messages are encoded
	// as maps keyed by their snake_case field names, taken from the json tags
	// of the generated types.
	CBOR Codec = newCBORCodec()

	// Protobuf is the schema-defined format described by the proto directory.
	// Output is deterministic so identical messages produce identical bytes.
	Protobuf Codec = protoCodec{opts: proto.MarshalOptions{Deterministic: true}}

	// Default is the codec used when a client Config leaves Codec nil.
	Default = CBOR
)

// OrDefault returns c, or Default when c is nil.
func OrDefault(c Codec) Codec {
	if c == nil {
		return Default
	}
	return c
}

type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func newCBORCodec() cborCodec {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("codec: invalid CBOR encoding options: %v", err))
	}

	dec, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("codec: invalid CBOR decoding options: %v", err))
	}

	return cborCodec{enc: enc, dec: dec}
}

func (cborCodec) Name() string { return "cbor" }

func (c cborCodec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c cborCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyPayload
	}
	return c.dec.Unmarshal(data, v)
}

type protoCodec struct {
	opts proto.MarshalOptions
}

func (protoCodec) Name() string { return "protobuf" }

func (c protoCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotProtoMessage, v)
	}
	return c.opts.Marshal(m)
}

func (protoCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotProtoMessage, v)
	}
	return proto.Unmarshal(data, m)
}
