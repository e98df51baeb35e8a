package events_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	"github.com/wascc/actor-sdk-go/events"
	"github.com/wascc/actor-sdk-go/hostmock"
	proto "github.com/wascc/actor-sdk-go/proto/events"
	"google.golang.org/protobuf/encoding/protowire"
	pb "google.golang.org/protobuf/proto"
)

func TestWriteEvent(t *testing.T) {
	values := map[string]string{"user": "alice", "action": "login"}

	for _, c := range []codec.Codec{codec.CBOR, codec.Protobuf} {
		t.Run(c.Name(), func(t *testing.T) {
			mock, _ := hostmock.New(hostmock.Config{
				ExpectedBinding:    "audit",
				ExpectedCapability: events.CapabilityID,
				ExpectedOperation:  events.OpWriteEvent,
				PayloadValidator: func(p []byte) error {
					var ev proto.Event
					if err := c.Unmarshal(p, &ev); err != nil {
						return err
					}
					if ev.GetEventId() != "" || ev.GetStream() != "logins" || !reflect.DeepEqual(ev.GetValues(), values) {
						return fmt.Errorf("unexpected event %v", &ev)
					}
					return nil
				},
				Response: func() []byte {
					b, _ := c.Marshal(&proto.WriteResponse{EventId: "1596-0"})
					return b
				},
			})

			client, _ := events.New(events.Config{
				SDKConfig: actor.RuntimeConfig{Binding: "audit"},
				Codec:     c,
				HostCall:  mock.HostCall,
			})

			id, err := client.WriteEvent("logins", values)
			if err != nil {
				t.Fatalf("WriteEvent returned error: %v", err)
			}
			if id != "1596-0" {
				t.Fatalf("unexpected event id %q", id)
			}
		})
	}
}

func TestQueries(t *testing.T) {
	results := &proto.StreamResults{Events: []*proto.Event{
		{EventId: "1", Stream: "s", Values: map[string]string{"a": "1"}},
		{EventId: "2", Stream: "s", Values: map[string]string{"a": "2", "b": "x"}},
	}}
	want := []events.Event{
		{EventID: "1", Stream: "s", Values: map[string]string{"a": "1"}},
		{EventID: "2", Stream: "s", Values: map[string]string{"a": "2", "b": "x"}},
	}

	tt := []struct {
		name  string
		call  func(events.Client) ([]events.Event, error)
		query *proto.StreamQuery
	}{
		{
			name:  "ReadAll",
			call:  func(c events.Client) ([]events.Event, error) { return c.ReadAll("s") },
			query: &proto.StreamQuery{StreamId: "s"},
		},
		{
			name:  "ReadLimit",
			call:  func(c events.Client) ([]events.Event, error) { return c.ReadLimit("s", 25) },
			query: &proto.StreamQuery{StreamId: "s", Count: 25},
		},
		{
			name: "ReadRange",
			call: func(c events.Client) ([]events.Event, error) {
				return c.ReadRange("s", events.TimeRange{MinTime: 100, MaxTime: 200}, 5)
			},
			query: &proto.StreamQuery{StreamId: "s", Range: &proto.TimeRange{MinTime: 100, MaxTime: 200}, Count: 5},
		},
	}

	for _, c := range []codec.Codec{codec.CBOR, codec.Protobuf} {
		for _, tc := range tt {
			t.Run(c.Name()+"/"+tc.name, func(t *testing.T) {
				mock, _ := hostmock.New(hostmock.Config{
					ExpectedCapability: events.CapabilityID,
					ExpectedOperation:  events.OpQueryStream,
					PayloadValidator: func(p []byte) error {
						var q proto.StreamQuery
						if err := c.Unmarshal(p, &q); err != nil {
							return err
						}
						if !pb.Equal(&q, tc.query) {
							return fmt.Errorf("unexpected query %v", &q)
						}
						return nil
					},
					Response: func() []byte {
						b, _ := c.Marshal(results)
						return b
					},
				})
				client, _ := events.New(events.Config{Codec: c, HostCall: mock.HostCall})

				got, err := tc.call(client)
				if err != nil {
					t.Fatalf("%s returned error: %v", tc.name, err)
				}
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("got %+v, want %+v", got, want)
				}
			})
		}
	}
}

func TestErrors(t *testing.T) {
	t.Run("host failure", func(t *testing.T) {
		mock, _ := hostmock.New(hostmock.Config{Fail: true})
		client, _ := events.New(events.Config{HostCall: mock.HostCall})

		if _, err := client.WriteEvent("s", nil); !errors.Is(err, actor.ErrHostCall) {
			t.Fatalf("expected ErrHostCall, got %v", err)
		}
		if _, err := client.ReadAll("s"); !errors.Is(err, actor.ErrHostCall) {
			t.Fatalf("expected ErrHostCall, got %v", err)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		mock, _ := hostmock.New(hostmock.Config{Response: func() []byte { return []byte{0x1f} }})
		client, _ := events.New(events.Config{HostCall: mock.HostCall})

		if _, err := client.WriteEvent("s", nil); !errors.Is(err, actor.ErrHostResponseInvalid) {
			t.Fatalf("expected ErrHostResponseInvalid, got %v", err)
		}
		if _, err := client.ReadLimit("s", 1); !errors.Is(err, actor.ErrHostResponseInvalid) {
			t.Fatalf("expected ErrHostResponseInvalid, got %v", err)
		}
	})
}

// TestStreamQueryRangeMerge checks that a range split across two occurrences
// of the same field is merged the way any protobuf provider would send it.
func TestStreamQueryRangeMerge(t *testing.T) {
	first := protowire.AppendTag(nil, 1, protowire.VarintType)
	first = protowire.AppendVarint(first, 5)
	second := protowire.AppendTag(nil, 2, protowire.VarintType)
	second = protowire.AppendVarint(second, 9)

	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, "s")
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, first)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, second)

	var q proto.StreamQuery
	if err := codec.Protobuf.Unmarshal(b, &q); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	want := &proto.StreamQuery{StreamId: "s", Range: &proto.TimeRange{MinTime: 5, MaxTime: 9}}
	if !pb.Equal(&q, want) {
		t.Fatalf("got %v, want %v", &q, want)
	}
}
