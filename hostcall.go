package actor

import (
	"errors"
	"fmt"

	"github.com/wascc/actor-sdk-go/codec"
)

// HostCall defines the waPC host function signature shared by every capability client.
type HostCall func(binding, capability, operation string, payload []byte) ([]byte, error)

// LegacyHostCall is the older three argument host function that has no notion of bindings.
type LegacyHostCall func(capability, operation string, payload []byte) ([]byte, error)

// Legacy adapts a LegacyHostCall so it can back any capability client. Calls
// addressed to a binding other than DefaultBinding fail without reaching the host.
func Legacy(fn LegacyHostCall) HostCall {
	return func(binding, capability, operation string, payload []byte) ([]byte, error) {
		if binding != "" && binding != DefaultBinding {
			return nil, fmt.Errorf("%w: %q", ErrBindingUnsupported, binding)
		}
		return fn(capability, operation, payload)
	}
}

// Dispatch encodes req with c, performs one host call, and returns the raw reply.
func Dispatch(hc HostCall, c codec.Codec, binding, capability, operation string, req any) ([]byte, error) {
	b, err := c.Marshal(req)
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}

	resp, err := hc(binding, capability, operation, b)
	if err != nil {
		return nil, errors.Join(ErrHostCall, err)
	}

	return resp, nil
}

// Invoke is Dispatch followed by decoding the reply into resp. A nil resp
// discards the reply payload.
func Invoke(hc HostCall, c codec.Codec, binding, capability, operation string, req, resp any) error {
	b, err := Dispatch(hc, c, binding, capability, operation, req)
	if err != nil {
		return err
	}

	if resp == nil {
		return nil
	}

	return Decode(c, b, resp)
}

// Decode unmarshals a host payload, reporting failures as ErrHostResponseInvalid.
func Decode(c codec.Codec, payload []byte, v any) error {
	if err := c.Unmarshal(payload, v); err != nil {
		return errors.Join(ErrHostResponseInvalid, ErrUnmarshalResponse, err)
	}
	return nil
}
