package untyped

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/hostmock"
)

func TestNew(t *testing.T) {
	t.Parallel()

	customHostCall := func(string, string, string, []byte) ([]byte, error) {
		return nil, nil
	}

	tt := []struct {
		name        string
		binding     string
		hostCall    actor.HostCall
		wantBinding string
		wantHostPtr uintptr
	}{
		{
			name:        "custom binding",
			binding:     "backup",
			wantBinding: "backup",
		},
		{
			name:        "default binding with override",
			hostCall:    customHostCall,
			wantBinding: actor.DefaultBinding,
			wantHostPtr: reflect.ValueOf(customHostCall).Pointer(),
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := New(Config{SDKConfig: actor.RuntimeConfig{Binding: tc.binding}, HostCall: tc.hostCall})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			if c.binding != tc.wantBinding {
				t.Fatalf("binding mismatch: want %q, got %q", tc.wantBinding, c.binding)
			}

			if tc.wantHostPtr != 0 {
				if got := reflect.ValueOf(c.hostCall).Pointer(); got != tc.wantHostPtr {
					t.Fatalf("hostcall pointer mismatch: want %v, got %v", tc.wantHostPtr, got)
				}
			}
		})
	}
}

func TestCall(t *testing.T) {
	t.Parallel()

	noop := func(string, string, string, []byte) ([]byte, error) { return nil, nil }

	tt := []struct {
		name       string
		binding    string
		capability string
		operation  string
		input      []byte
		hostCfg    *hostmock.Config
		hostCall   actor.HostCall
		wantOutput []byte
		wantErr    error
	}{
		{
			name:       "happy path",
			binding:    "custom",
			capability: "acme:thing",
			operation:  "DoThing",
			input:      []byte{0x01, 0x02},
			hostCfg: &hostmock.Config{
				ExpectedBinding:    "custom",
				ExpectedCapability: "acme:thing",
				ExpectedOperation:  "DoThing",
				PayloadValidator: func(payload []byte) error {
					if !bytes.Equal(payload, []byte{0x01, 0x02}) {
						return errors.New("payload was altered")
					}
					return nil
				},
				Response: func() []byte { return []byte("result") },
			},
			wantOutput: []byte("result"),
		},
		{
			name:      "empty capability",
			operation: "DoThing",
			hostCall:  noop,
			wantErr:   ErrInvalidRoute,
		},
		{
			name:       "whitespace operation",
			capability: "acme:thing",
			operation:  " \n\t ",
			hostCall:   noop,
			wantErr:    ErrInvalidRoute,
		},
		{
			name:       "host error",
			capability: "acme:thing",
			operation:  "DoThing",
			hostCfg: &hostmock.Config{
				ExpectedBinding: actor.DefaultBinding,
				Fail:            true,
				Error:           errors.New("boom"),
			},
			wantErr: actor.ErrHostCall,
		},
		{
			name:       "empty input allowed",
			capability: "acme:thing",
			operation:  "DoThing",
			hostCfg: &hostmock.Config{
				PayloadValidator: func(payload []byte) error {
					if len(payload) != 0 {
						return errors.New("expected empty payload")
					}
					return nil
				},
				Response: func() []byte { return []byte{} },
			},
			wantOutput: []byte{},
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hostCall := tc.hostCall
			if tc.hostCfg != nil {
				mock, err := hostmock.New(*tc.hostCfg)
				if err != nil {
					t.Fatalf("failed to create hostmock: %v", err)
				}
				hostCall = mock.HostCall
			}

			c, err := New(Config{SDKConfig: actor.RuntimeConfig{Binding: tc.binding}, HostCall: hostCall})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			got, gotErr := c.Call(tc.capability, tc.operation, tc.input)
			if !errors.Is(gotErr, tc.wantErr) {
				t.Fatalf("unexpected error: want %v got %v", tc.wantErr, gotErr)
			}

			if tc.wantErr != nil {
				return
			}

			if !bytes.Equal(got, tc.wantOutput) {
				t.Fatalf("output mismatch: want %q got %q", string(tc.wantOutput), string(got))
			}
		})
	}
}

func TestCallLegacy(t *testing.T) {
	t.Parallel()

	legacy := actor.Legacy(func(capability, operation string, payload []byte) ([]byte, error) {
		return append([]byte(capability+"/"+operation+":"), payload...), nil
	})

	c, _ := New(Config{HostCall: legacy})
	got, err := c.Call("acme:thing", "Ping", []byte("x"))
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if string(got) != "acme:thing/Ping:x" {
		t.Fatalf("unexpected output %q", got)
	}

	other, _ := New(Config{SDKConfig: actor.RuntimeConfig{Binding: "other"}, HostCall: legacy})
	if _, err := other.Call("acme:thing", "Ping", nil); !errors.Is(err, actor.ErrBindingUnsupported) || !errors.Is(err, actor.ErrHostCall) {
		t.Fatalf("expected ErrBindingUnsupported, got %v", err)
	}
}
