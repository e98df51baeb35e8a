package actor

import (
	"errors"
	"testing"

	"github.com/wascc/actor-sdk-go/codec"
)

type ping struct {
	Name string `cbor:"name"`
}

func TestLegacy(t *testing.T) {
	var gotCap, gotOp string
	legacy := Legacy(func(capability, operation string, payload []byte) ([]byte, error) {
		gotCap, gotOp = capability, operation
		return payload, nil
	})

	for _, binding := range []string{"", DefaultBinding} {
		out, err := legacy(binding, "wascc:keyvalue", "Get", []byte("p"))
		if err != nil {
			t.Fatalf("binding %q: unexpected error %v", binding, err)
		}
		if string(out) != "p" || gotCap != "wascc:keyvalue" || gotOp != "Get" {
			t.Fatalf("binding %q: call not forwarded intact", binding)
		}
	}

	called := false
	legacy = Legacy(func(string, string, []byte) ([]byte, error) {
		called = true
		return nil, nil
	})
	if _, err := legacy("other", "wascc:keyvalue", "Get", nil); !errors.Is(err, ErrBindingUnsupported) {
		t.Fatalf("expected ErrBindingUnsupported, got %v", err)
	}
	if called {
		t.Fatalf("legacy host call reached for non-default binding")
	}
}

func TestDispatch(t *testing.T) {
	hostErr := errors.New("boom")

	t.Run("encodes and forwards", func(t *testing.T) {
		hc := func(binding, capability, operation string, payload []byte) ([]byte, error) {
			var p ping
			if err := codec.CBOR.Unmarshal(payload, &p); err != nil {
				return nil, err
			}
			if binding != "b" || capability != "c" || operation != "o" || p.Name != "n" {
				return nil, errors.New("route or payload mismatch")
			}
			return []byte("raw"), nil
		}
		out, err := Dispatch(hc, codec.CBOR, "b", "c", "o", &ping{Name: "n"})
		if err != nil || string(out) != "raw" {
			t.Fatalf("unexpected result %q, %v", out, err)
		}
	})

	t.Run("host error", func(t *testing.T) {
		hc := func(string, string, string, []byte) ([]byte, error) { return nil, hostErr }
		_, err := Dispatch(hc, codec.CBOR, "b", "c", "o", &ping{})
		if !errors.Is(err, ErrHostCall) || !errors.Is(err, hostErr) {
			t.Fatalf("expected ErrHostCall wrapping boom, got %v", err)
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		hc := func(string, string, string, []byte) ([]byte, error) {
			t.Fatalf("host should not be called")
			return nil, nil
		}
		_, err := Dispatch(hc, codec.CBOR, "b", "c", "o", make(chan int))
		if !errors.Is(err, ErrMarshalRequest) {
			t.Fatalf("expected ErrMarshalRequest, got %v", err)
		}
	})
}

func TestInvoke(t *testing.T) {
	reply, _ := codec.CBOR.Marshal(&ping{Name: "pong"})

	t.Run("decodes reply", func(t *testing.T) {
		hc := func(string, string, string, []byte) ([]byte, error) { return reply, nil }
		var out ping
		if err := Invoke(hc, codec.CBOR, "b", "c", "o", &ping{}, &out); err != nil {
			t.Fatalf("Invoke returned error: %v", err)
		}
		if out.Name != "pong" {
			t.Fatalf("unexpected reply %+v", out)
		}
	})

	t.Run("nil response discards reply", func(t *testing.T) {
		hc := func(string, string, string, []byte) ([]byte, error) { return []byte("junk"), nil }
		if err := Invoke(hc, codec.CBOR, "b", "c", "o", &ping{}, nil); err != nil {
			t.Fatalf("Invoke returned error: %v", err)
		}
	})

	t.Run("malformed reply", func(t *testing.T) {
		hc := func(string, string, string, []byte) ([]byte, error) { return []byte{0xff, 0x00}, nil }
		var out ping
		err := Invoke(hc, codec.CBOR, "b", "c", "o", &ping{}, &out)
		if !errors.Is(err, ErrHostResponseInvalid) || !errors.Is(err, ErrUnmarshalResponse) {
			t.Fatalf("expected ErrHostResponseInvalid, got %v", err)
		}
	})

	t.Run("empty reply", func(t *testing.T) {
		hc := func(string, string, string, []byte) ([]byte, error) { return nil, nil }
		var out ping
		if err := Invoke(hc, codec.CBOR, "b", "c", "o", &ping{}, &out); !errors.Is(err, ErrHostResponseInvalid) {
			t.Fatalf("expected ErrHostResponseInvalid for empty reply, got %v", err)
		}
	})
}
