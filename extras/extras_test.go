package extras_test

import (
	"errors"
	"fmt"
	"testing"

	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	"github.com/wascc/actor-sdk-go/extras"
	"github.com/wascc/actor-sdk-go/hostmock"
	proto "github.com/wascc/actor-sdk-go/proto/extras"
	pb "google.golang.org/protobuf/proto"
)

func generator(t *testing.T, c codec.Codec, op string, want, result pb.Message) *extras.ExtrasClient {
	t.Helper()
	mock, err := hostmock.New(hostmock.Config{
		ExpectedBinding:    actor.DefaultBinding,
		ExpectedCapability: extras.CapabilityID,
		ExpectedOperation:  op,
		PayloadValidator: func(p []byte) error {
			var req proto.GeneratorRequest
			if err := c.Unmarshal(p, &req); err != nil {
				return err
			}
			if !pb.Equal(&req, want) {
				return fmt.Errorf("unexpected generator request %v", &req)
			}
			return nil
		},
		Response: func() []byte {
			b, _ := c.Marshal(result)
			return b
		},
	})
	if err != nil {
		t.Fatalf("failed to create host mock: %v", err)
	}

	client, err := extras.New(extras.Config{Codec: c, HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("failed to create extras client: %v", err)
	}
	return client
}

func TestGenerators(t *testing.T) {
	for _, c := range []codec.Codec{codec.CBOR, codec.Protobuf} {
		t.Run(c.Name(), func(t *testing.T) {
			t.Run("Random", func(t *testing.T) {
				client := generator(t, c, extras.OpRequestRandom,
					&proto.GeneratorRequest{Random: true, Min: 10, Max: 20},
					&proto.GeneratorResult{RandomNumber: 17})
				n, err := client.Random(10, 20)
				if err != nil || n != 17 {
					t.Fatalf("Random = %d, %v; want 17", n, err)
				}
			})

			t.Run("SequenceNumber", func(t *testing.T) {
				client := generator(t, c, extras.OpRequestSequence,
					&proto.GeneratorRequest{Sequence: true},
					&proto.GeneratorResult{SequenceNumber: 1 << 40})
				n, err := client.SequenceNumber()
				if err != nil || n != 1<<40 {
					t.Fatalf("SequenceNumber = %d, %v", n, err)
				}
			})

			t.Run("GUID", func(t *testing.T) {
				const id = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
				client := generator(t, c, extras.OpRequestGUID,
					&proto.GeneratorRequest{Guid: true},
					&proto.GeneratorResult{Guid: id})
				got, err := client.GUID()
				if err != nil || got != id {
					t.Fatalf("GUID = %q, %v; want %q", got, err, id)
				}
			})
		})
	}
}

func TestGUIDInvalid(t *testing.T) {
	tt := []struct {
		name    string
		guid    string
		wantErr error
	}{
		{"missing", "", extras.ErrMissingGUID},
		{"legacy sentinel", "none", extras.ErrInvalidGUID},
		{"truncated", "6ba7b810-9dad-11d1", extras.ErrInvalidGUID},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			client := generator(t, codec.CBOR, extras.OpRequestGUID,
				&proto.GeneratorRequest{Guid: true},
				&proto.GeneratorResult{Guid: tc.guid, SequenceNumber: 1})

			got, err := client.GUID()
			if !errors.Is(err, actor.ErrHostResponseInvalid) || !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected ErrHostResponseInvalid and %v, got %v", tc.wantErr, err)
			}
			if got != "" {
				t.Fatalf("expected empty guid on error, got %q", got)
			}
		})
	}
}

func TestHostErrors(t *testing.T) {
	mock, _ := hostmock.New(hostmock.Config{Fail: true})
	client, _ := extras.New(extras.Config{HostCall: mock.HostCall})

	if _, err := client.Random(0, 1); !errors.Is(err, actor.ErrHostCall) {
		t.Fatalf("Random: expected ErrHostCall, got %v", err)
	}
	if _, err := client.GUID(); !errors.Is(err, actor.ErrHostCall) {
		t.Fatalf("GUID: expected ErrHostCall, got %v", err)
	}
	if _, err := client.SequenceNumber(); !errors.Is(err, actor.ErrHostCall) {
		t.Fatalf("SequenceNumber: expected ErrHostCall, got %v", err)
	}
}
