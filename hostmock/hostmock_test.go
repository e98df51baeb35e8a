package hostmock

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

var ErrMockError = errors.New("Mock error")

func TestHostMock(t *testing.T) {
	routed := Config{
		ExpectedBinding:    "default",
		ExpectedCapability: "wascc:keyvalue",
		ExpectedOperation:  "Get",
		Response:           func() []byte { return []byte("value") },
	}

	tt := []struct {
		name       string
		cfg        Config
		binding    string
		capability string
		operation  string
		payload    []byte
		want       []byte
		wantErr    error
	}{
		{
			name:       "Routed response",
			cfg:        routed,
			binding:    "default",
			capability: "wascc:keyvalue",
			operation:  "Get",
			payload:    []byte("payload"),
			want:       []byte("value"),
		},
		{
			name: "Custom failure",
			cfg: Config{
				Fail:     true,
				Error:    ErrMockError,
				Response: func() []byte { return []byte("ignored") },
			},
			binding:    "default",
			capability: "wascc:keyvalue",
			operation:  "Get",
			wantErr:    ErrMockError,
		},
		{
			name:       "Default fail error",
			cfg:        Config{Fail: true},
			binding:    "default",
			capability: "wascc:keyvalue",
			operation:  "Get",
			wantErr:    ErrOperationFailed,
		},
		{
			name:       "Nil response returns nil",
			cfg:        Config{ExpectedCapability: "wascc:extras"},
			binding:    "default",
			capability: "wascc:extras",
			operation:  "RequestGuid",
		},
		{
			name:       "Blank expectations are wildcards",
			cfg:        Config{Response: func() []byte { return []byte("any") }},
			binding:    "other",
			capability: "acme:custom",
			operation:  "Whatever",
			want:       []byte("any"),
		},
		{
			name: "Invalid Payload Format",
			cfg: Config{
				PayloadValidator: func(payload []byte) error {
					if string(payload) != "valid" {
						return ErrMockError
					}
					return nil
				},
			},
			binding:    "default",
			capability: "wascc:keyvalue",
			operation:  "Get",
			payload:    []byte("invalid"),
			wantErr:    ErrMockError,
		},
		{
			name:       "Unexpected Binding",
			cfg:        routed,
			binding:    "secondary",
			capability: "wascc:keyvalue",
			operation:  "Get",
			wantErr:    ErrUnexpectedBinding,
		},
		{
			name:       "Unexpected Capability",
			cfg:        routed,
			binding:    "default",
			capability: "wascc:messaging",
			operation:  "Get",
			wantErr:    ErrUnexpectedCapability,
		},
		{
			name:       "Unexpected Operation",
			cfg:        routed,
			binding:    "default",
			capability: "wascc:keyvalue",
			operation:  "Set",
			wantErr:    ErrUnexpectedOperation,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("New Mock instance creation failed: %v", err)
			}

			got, err := mock.HostCall(tc.binding, tc.capability, tc.operation, tc.payload)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Mock call returned unexpected error: got %v, want %v", err, tc.wantErr)
			}

			if !bytes.Equal(got, tc.want) {
				t.Fatalf("Mock call returned unexpected response: got %v, want %v", got, tc.want)
			}

			if mock.Calls() != 1 {
				t.Fatalf("expected 1 recorded call, got %d", mock.Calls())
			}
		})
	}
}

func TestHostMockConcurrentCalls(t *testing.T) {
	mock, err := New(Config{Response: func() []byte { return []byte("ok") }})
	if err != nil {
		t.Fatalf("New Mock instance creation failed: %v", err)
	}

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, err := mock.HostCall("default", "wascc:keyvalue", "Get", nil); err != nil {
					t.Errorf("Mock call returned unexpected error: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	if got := mock.Calls(); got != workers*perWorker {
		t.Fatalf("expected %d recorded calls, got %d", workers*perWorker, got)
	}
}

func TestHost(t *testing.T) {
	t.Run("Routes by capability and operation", func(t *testing.T) {
		h := NewHost().
			Handle("wascc:extras", "RequestGuid", func(_ string, _ []byte) ([]byte, error) {
				return []byte("guid"), nil
			}).
			Handle("wascc:extras", "RequestRandom", func(_ string, p []byte) ([]byte, error) {
				return p, nil
			})

		got, err := h.HostCall("default", "wascc:extras", "RequestGuid", nil)
		if err != nil || string(got) != "guid" {
			t.Fatalf("unexpected result %q, %v", got, err)
		}

		got, err = h.HostCall("default", "wascc:extras", "RequestRandom", []byte("echo"))
		if err != nil || string(got) != "echo" {
			t.Fatalf("unexpected result %q, %v", got, err)
		}

		if routes := h.Routes(); len(routes) != 2 || routes[0] != "wascc:extras!RequestGuid" {
			t.Fatalf("unexpected routes %v", routes)
		}
	})

	t.Run("Unrouted call", func(t *testing.T) {
		h := NewHost()
		if _, err := h.HostCall("default", "wascc:extras", "RequestGuid", nil); !errors.Is(err, ErrNoRoute) {
			t.Fatalf("expected ErrNoRoute, got %v", err)
		}
	})

	t.Run("FailWith overrides routes", func(t *testing.T) {
		h := NewHost().Handle("a", "b", func(string, []byte) ([]byte, error) { return nil, nil })
		h.FailWith = ErrMockError
		if _, err := h.HostCall("default", "a", "b", nil); !errors.Is(err, ErrMockError) {
			t.Fatalf("expected ErrMockError, got %v", err)
		}
	})

	t.Run("Records calls", func(t *testing.T) {
		h := NewHost().Handle("a", "b", func(string, []byte) ([]byte, error) { return nil, nil })

		payload := []byte("original")
		_, _ = h.HostCall("custom", "a", "b", payload)
		payload[0] = 'X'

		last, ok := h.LastCall()
		if !ok {
			t.Fatalf("expected a recorded call")
		}
		if last.Binding != "custom" || last.Capability != "a" || last.Operation != "b" {
			t.Fatalf("unexpected call record %+v", last)
		}
		if string(last.Payload) != "original" {
			t.Fatalf("expected payload to be copied, got %q", last.Payload)
		}
	})

	t.Run("Concurrent calls", func(t *testing.T) {
		h := NewHost().Handle("a", "b", func(string, []byte) ([]byte, error) { return nil, nil })

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = h.HostCall("default", "a", "b", nil)
			}()
		}
		wg.Wait()

		if n := len(h.Calls()); n != 50 {
			t.Fatalf("expected 50 calls, got %d", n)
		}
	})
}
