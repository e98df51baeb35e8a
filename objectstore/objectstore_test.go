package objectstore_test

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"testing"

	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	"github.com/wascc/actor-sdk-go/hostmock"
	"github.com/wascc/actor-sdk-go/objectstore"
	proto "github.com/wascc/actor-sdk-go/proto/objectstore"
	pb "google.golang.org/protobuf/proto"
)

func newClient(t *testing.T, c codec.Codec, hc actor.HostCall) *objectstore.ObjectStoreClient {
	t.Helper()
	client, err := objectstore.New(objectstore.Config{Codec: c, HostCall: hc})
	if err != nil {
		t.Fatalf("failed to create object store client: %v", err)
	}
	return client
}

func encode(t *testing.T, c codec.Codec, v any) []byte {
	t.Helper()
	b, err := c.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	return b
}

func TestContainers(t *testing.T) {
	for _, c := range []codec.Codec{codec.CBOR, codec.Protobuf} {
		t.Run(c.Name(), func(t *testing.T) {
			host := hostmock.NewHost().
				Handle(objectstore.CapabilityID, objectstore.OpCreateContainer, func(_ string, p []byte) ([]byte, error) {
					var req proto.Container
					if err := c.Unmarshal(p, &req); err != nil {
						return nil, err
					}
					return c.Marshal(&proto.Container{Id: req.GetId() + "-created"})
				}).
				Handle(objectstore.CapabilityID, objectstore.OpRemoveContainer, func(string, []byte) ([]byte, error) {
					return nil, nil
				}).
				Handle(objectstore.CapabilityID, objectstore.OpRemoveObject, func(string, []byte) ([]byte, error) {
					return nil, nil
				}).
				Handle(objectstore.CapabilityID, objectstore.OpListObjects, func(string, []byte) ([]byte, error) {
					return c.Marshal(&proto.BlobList{Blobs: []*proto.Blob{
						{Id: "a", Container: "photos", ByteSize: 10},
						{Id: "b", Container: "photos", ByteSize: 20},
					}})
				})
			client := newClient(t, c, host.HostCall)

			got, err := client.CreateContainer("photos")
			if err != nil {
				t.Fatalf("CreateContainer returned error: %v", err)
			}
			if got.ID != "photos-created" {
				t.Fatalf("expected provider container, got %+v", got)
			}

			blobs, err := client.ListObjects("photos")
			if err != nil {
				t.Fatalf("ListObjects returned error: %v", err)
			}
			if len(blobs) != 2 || blobs[1].ByteSize != 20 {
				t.Fatalf("unexpected blobs %+v", blobs)
			}

			if err := client.RemoveObject("a", "photos"); err != nil {
				t.Fatalf("RemoveObject returned error: %v", err)
			}
			call, _ := host.LastCall()
			var removed proto.Blob
			if err := c.Unmarshal(call.Payload, &removed); err != nil {
				t.Fatalf("failed to decode RemoveObject payload: %v", err)
			}
			if !pb.Equal(&removed, &proto.Blob{Id: "a", Container: "photos"}) {
				t.Fatalf("unexpected RemoveObject request %v", &removed)
			}

			if err := client.RemoveContainer("photos"); err != nil {
				t.Fatalf("RemoveContainer returned error: %v", err)
			}
			if n := len(host.Calls()); n != 4 {
				t.Fatalf("expected 4 host calls, got %d", n)
			}
		})
	}
}

func TestGetObjectInfo(t *testing.T) {
	tt := []struct {
		name  string
		resp  objectstore.Blob
		found bool
	}{
		{"found", objectstore.Blob{ID: "a", Container: "c", ByteSize: 42}, true},
		{"missing", objectstore.Blob{Container: "c"}, false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			mock, _ := hostmock.New(hostmock.Config{
				ExpectedCapability: objectstore.CapabilityID,
				ExpectedOperation:  objectstore.OpGetObjectInfo,
				Response: func() []byte {
					return encode(t, codec.CBOR, &proto.Blob{Id: tc.resp.ID, Container: tc.resp.Container, ByteSize: tc.resp.ByteSize})
				},
			})
			client := newClient(t, nil, mock.HostCall)

			blob, found, err := client.GetObjectInfo("c", "a")
			if err != nil {
				t.Fatalf("GetObjectInfo returned error: %v", err)
			}
			if found != tc.found {
				t.Fatalf("found = %v, want %v", found, tc.found)
			}
			if found && blob != tc.resp {
				t.Fatalf("blob = %+v, want %+v", blob, tc.resp)
			}
			if !found && blob != (objectstore.Blob{}) {
				t.Fatalf("expected zero blob when missing, got %+v", blob)
			}
		})
	}
}

func TestStartUpload(t *testing.T) {
	blob := objectstore.Blob{ID: "video.mp4", Container: "media"}

	tt := []struct {
		name       string
		response   func(c codec.Codec) []byte
		wantChunk  uint64
		wantChunks uint64
		wantErr    error
	}{
		{
			name:       "empty reply keeps requested size",
			response:   func(codec.Codec) []byte { return nil },
			wantChunk:  100,
			wantChunks: 10,
		},
		{
			name: "provider chunk size is authoritative",
			response: func(c codec.Codec) []byte {
				b, _ := c.Marshal(&proto.Transfer{ChunkSize: 300})
				return b
			},
			wantChunk:  300,
			wantChunks: 3,
		},
		{
			name: "provider transfer without chunk size",
			response: func(c codec.Codec) []byte {
				b, _ := c.Marshal(&proto.Transfer{BlobId: "video.mp4"})
				return b
			},
			wantChunk:  100,
			wantChunks: 10,
		},
		{
			name:     "undecodable reply",
			response: func(codec.Codec) []byte { return []byte{0xff, 0xff, 0xff} },
			wantErr:  actor.ErrHostResponseInvalid,
		},
	}

	for _, c := range []codec.Codec{codec.CBOR, codec.Protobuf} {
		for _, tc := range tt {
			t.Run(c.Name()+"/"+tc.name, func(t *testing.T) {
				mock, _ := hostmock.New(hostmock.Config{
					ExpectedCapability: objectstore.CapabilityID,
					ExpectedOperation:  objectstore.OpStartUpload,
					PayloadValidator: func(p []byte) error {
						var chunk proto.FileChunk
						if err := c.Unmarshal(p, &chunk); err != nil {
							return err
						}
						want := &proto.FileChunk{Container: "media", Id: "video.mp4", TotalBytes: 1000, ChunkSize: 100}
						if !pb.Equal(&chunk, want) {
							return fmt.Errorf("unexpected start chunk %v", &chunk)
						}
						return nil
					},
					Response: func() []byte { return tc.response(c) },
				})
				client := newClient(t, c, mock.HostCall)

				tr, err := client.StartUpload(blob, 100, 1000)
				if tc.wantErr != nil {
					if !errors.Is(err, tc.wantErr) {
						t.Fatalf("expected %v, got %v", tc.wantErr, err)
					}
					return
				}
				if err != nil {
					t.Fatalf("StartUpload returned error: %v", err)
				}
				if tr.ChunkSize != tc.wantChunk || tr.TotalChunks != tc.wantChunks {
					t.Fatalf("unexpected transfer %+v", tr)
				}
				if tr.TotalSize != 1000 || tr.BlobID != blob.ID || tr.Container != blob.Container {
					t.Fatalf("unexpected transfer identity %+v", tr)
				}
			})
		}
	}
}

func TestStartUploadZeroChunkSize(t *testing.T) {
	mock, _ := hostmock.New(hostmock.Config{})
	client := newClient(t, nil, mock.HostCall)

	if _, err := client.StartUpload(objectstore.Blob{ID: "a"}, 0, 10); !errors.Is(err, objectstore.ErrInvalidChunkSize) {
		t.Fatalf("expected ErrInvalidChunkSize, got %v", err)
	}
	if _, err := client.StartDownload(objectstore.Blob{ID: "a"}, 0, ""); !errors.Is(err, objectstore.ErrInvalidChunkSize) {
		t.Fatalf("expected ErrInvalidChunkSize, got %v", err)
	}
	if mock.Calls() != 0 {
		t.Fatalf("expected no host calls, got %d", mock.Calls())
	}
}

// TestUploadRoundTrip uploads a blob in chunks to a fake provider and checks
// the reassembled bytes.
func TestUploadRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 37)

	for _, c := range []codec.Codec{codec.CBOR, codec.Protobuf} {
		t.Run(c.Name(), func(t *testing.T) {
			var stored []byte
			var seen []objectstore.ChunkIndex
			host := hostmock.NewHost().
				Handle(objectstore.CapabilityID, objectstore.OpStartUpload, func(string, []byte) ([]byte, error) {
					return c.Marshal(&proto.Transfer{ChunkSize: 64})
				}).
				Handle(objectstore.CapabilityID, objectstore.OpUploadChunk, func(_ string, p []byte) ([]byte, error) {
					chunk, err := objectstore.DecodeFileChunk(c, p)
					if err != nil {
						return nil, err
					}
					if chunk.ChunkSize != 64 || chunk.TotalBytes != uint64(len(data)) || chunk.Context != "" {
						return nil, fmt.Errorf("unexpected chunk header %+v", chunk)
					}
					seen = append(seen, chunk.SequenceNo)
					stored = append(stored, chunk.ChunkBytes...)
					return nil, nil
				})
			client := newClient(t, c, host.HostCall)

			tr, err := client.StartUpload(objectstore.Blob{ID: "blob", Container: "c"}, 100, uint64(len(data)))
			if err != nil {
				t.Fatalf("StartUpload returned error: %v", err)
			}

			for i := objectstore.ChunkIndex(0); uint64(i) < tr.ChunkCount(); i++ {
				off := uint64(tr.Offset(i))
				if err := client.UploadChunk(tr, i, data[off:off+tr.ChunkLen(i)]); err != nil {
					t.Fatalf("UploadChunk(%d) returned error: %v", i, err)
				}
			}

			if !bytes.Equal(stored, data) {
				t.Fatalf("reassembled data does not match")
			}
			for i, idx := range seen {
				if idx != objectstore.ChunkIndex(i) {
					t.Fatalf("chunk %d carried sequence number %d", i, idx)
				}
			}
		})
	}
}

func TestStartDownload(t *testing.T) {
	blob := objectstore.Blob{ID: "log.txt", Container: "logs", ByteSize: 250}

	mock, _ := hostmock.New(hostmock.Config{
		ExpectedCapability: objectstore.CapabilityID,
		ExpectedOperation:  objectstore.OpStartDownload,
		PayloadValidator: func(p []byte) error {
			var req proto.StreamRequest
			if err := codec.CBOR.Unmarshal(p, &req); err != nil {
				return err
			}
			want := &proto.StreamRequest{Id: "log.txt", Container: "logs", ChunkSize: 100, Context: "job-7"}
			if !pb.Equal(&req, want) {
				return fmt.Errorf("unexpected stream request %v", &req)
			}
			return nil
		},
	})
	client := newClient(t, nil, mock.HostCall)

	tr, err := client.StartDownload(blob, 100, "job-7")
	if err != nil {
		t.Fatalf("StartDownload returned error: %v", err)
	}
	want := objectstore.Transfer{BlobID: "log.txt", Container: "logs", ChunkSize: 100, TotalSize: 250, TotalChunks: 2, Context: "job-7"}
	if tr != want {
		t.Fatalf("transfer = %+v, want %+v", tr, want)
	}
	if tr.Remainder() != 50 || tr.ChunkCount() != 3 {
		t.Fatalf("unexpected remainder %d or chunk count %d", tr.Remainder(), tr.ChunkCount())
	}
}

func TestHostErrors(t *testing.T) {
	hostErr := errors.New("no provider")
	mock, _ := hostmock.New(hostmock.Config{Fail: true, Error: hostErr})
	client := newClient(t, nil, mock.HostCall)
	blob := objectstore.Blob{ID: "a", Container: "c", ByteSize: 10}

	calls := map[string]func() error{
		"CreateContainer": func() error { _, err := client.CreateContainer("c"); return err },
		"RemoveContainer": func() error { return client.RemoveContainer("c") },
		"RemoveObject":    func() error { return client.RemoveObject("a", "c") },
		"ListObjects":     func() error { _, err := client.ListObjects("c"); return err },
		"GetObjectInfo":   func() error { _, _, err := client.GetObjectInfo("c", "a"); return err },
		"StartUpload":     func() error { _, err := client.StartUpload(blob, 4, 10); return err },
		"UploadChunk":     func() error { return client.UploadChunk(objectstore.Transfer{ChunkSize: 4}, 0, []byte("x")) },
		"StartDownload":   func() error { _, err := client.StartDownload(blob, 4, ""); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			if !errors.Is(err, actor.ErrHostCall) || !errors.Is(err, hostErr) {
				t.Fatalf("expected ErrHostCall wrapping host error, got %v", err)
			}
		})
	}
}

func TestDecodeFileChunk(t *testing.T) {
	want := objectstore.FileChunk{
		SequenceNo: 3,
		Container:  "c",
		ID:         "a",
		TotalBytes: 400,
		ChunkSize:  100,
		ChunkBytes: []byte("chunk-bytes"),
		Context:    "job-7",
	}

	for _, c := range []codec.Codec{codec.CBOR, codec.Protobuf} {
		t.Run(c.Name(), func(t *testing.T) {
			wire := &proto.FileChunk{
				SequenceNo: uint64(want.SequenceNo),
				Container:  want.Container,
				Id:         want.ID,
				TotalBytes: want.TotalBytes,
				ChunkSize:  want.ChunkSize,
				ChunkBytes: want.ChunkBytes,
				Context:    want.Context,
			}
			got, err := objectstore.DecodeFileChunk(c, encode(t, c, wire))
			if err != nil {
				t.Fatalf("DecodeFileChunk returned error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("got %+v, want %+v", got, want)
			}
		})
	}

	if _, err := objectstore.DecodeFileChunk(nil, []byte("not cbor")); !errors.Is(err, actor.ErrHostResponseInvalid) {
		t.Fatalf("expected ErrHostResponseInvalid, got %v", err)
	}
}
