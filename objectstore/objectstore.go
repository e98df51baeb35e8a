package objectstore

import (
	wapc "github.com/wapc/wapc-guest-tinygo"
	actor "github.com/wascc/actor-sdk-go"
	"github.com/wascc/actor-sdk-go/codec"
	proto "github.com/wascc/actor-sdk-go/proto/objectstore"
)

// CapabilityID routes host calls to the bound blob store provider.
const CapabilityID = "wascc:blobstore"

// Operation names understood by blob store providers.
const (
	OpCreateContainer = "CreateContainer"
	OpRemoveContainer = "RemoveContainer"
	OpRemoveObject    = "RemoveObject"
	OpListObjects     = "ListObjects"
	OpGetObjectInfo   = "GetObjectInfo"
	OpStartUpload     = "StartUpload"
	OpUploadChunk     = "UploadChunk"
	OpStartDownload   = "StartDownload"

	// OpReceiveChunk is the inbound operation carrying one downloaded FileChunk.
	OpReceiveChunk = "ReceiveChunk"
)

// Client defines the blob store capability interface.
type Client interface {
	// CreateContainer creates a container and returns the provider's description of it.
	CreateContainer(name string) (Container, error)

	// RemoveContainer removes a container. Whether a non-empty container can
	// be removed is up to the provider.
	RemoveContainer(name string) error

	// RemoveObject removes one blob from a container.
	RemoveObject(id, container string) error

	// ListObjects lists the blobs in a container.
	ListObjects(container string) ([]Blob, error)

	// GetObjectInfo returns blob metadata and whether the blob exists.
	GetObjectInfo(container, id string) (Blob, bool, error)

	// StartUpload announces an upload of totalBytes and returns its transfer descriptor.
	StartUpload(blob Blob, chunkSize, totalBytes uint64) (Transfer, error)

	// UploadChunk sends chunk index of an upload started with StartUpload.
	UploadChunk(transfer Transfer, index ChunkIndex, data []byte) error

	// StartDownload asks the provider to stream blob to the actor as ReceiveChunk calls.
	StartDownload(blob Blob, chunkSize uint64, context string) (Transfer, error)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the binding used for host calls.
	SDKConfig actor.RuntimeConfig

	// Codec selects the wire format. Nil uses codec.Default.
	Codec codec.Codec

	// HostCall overrides the waPC host function used for blob store operations.
	HostCall actor.HostCall
}

// ObjectStoreClient is the blob store capability client implementation. It
// keeps no transfer state between calls.
type ObjectStoreClient struct {
	binding  string
	codec    codec.Codec
	hostCall actor.HostCall
}

// Ensure ObjectStoreClient satisfies the Client interface at compile time.
var _ Client = (*ObjectStoreClient)(nil)

// New creates a blob store client with binding and codec defaults.
func New(config Config) (*ObjectStoreClient, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &ObjectStoreClient{
		binding:  config.SDKConfig.BindingOrDefault(),
		codec:    codec.OrDefault(config.Codec),
		hostCall: hostCall,
	}, nil
}

func (c *ObjectStoreClient) invoke(op string, req, resp any) error {
	return actor.Invoke(c.hostCall, c.codec, c.binding, CapabilityID, op, req, resp)
}

// CreateContainer creates a container and returns the provider's description of it.
func (c *ObjectStoreClient) CreateContainer(name string) (Container, error) {
	var resp proto.Container
	if err := c.invoke(OpCreateContainer, &proto.Container{Id: name}, &resp); err != nil {
		return Container{}, err
	}
	return Container{ID: resp.GetId()}, nil
}

// RemoveContainer removes a container.
func (c *ObjectStoreClient) RemoveContainer(name string) error {
	return c.invoke(OpRemoveContainer, &proto.Container{Id: name}, nil)
}

// RemoveObject removes one blob from a container.
func (c *ObjectStoreClient) RemoveObject(id, container string) error {
	return c.invoke(OpRemoveObject, &proto.Blob{Id: id, Container: container}, nil)
}

// ListObjects lists the blobs in a container.
func (c *ObjectStoreClient) ListObjects(container string) ([]Blob, error) {
	var resp proto.BlobList
	if err := c.invoke(OpListObjects, &proto.Container{Id: container}, &resp); err != nil {
		return nil, err
	}
	return blobsFromProto(resp.GetBlobs()), nil
}

// GetObjectInfo returns blob metadata. Providers signal a missing blob with an empty id.
func (c *ObjectStoreClient) GetObjectInfo(container, id string) (Blob, bool, error) {
	var resp proto.Blob
	if err := c.invoke(OpGetObjectInfo, &proto.Blob{Id: id, Container: container}, &resp); err != nil {
		return Blob{}, false, err
	}
	if resp.GetId() == "" {
		return Blob{}, false, nil
	}
	return blobFromProto(&resp), true, nil
}

// StartUpload announces an upload. The chunk size is a request; when the
// provider answers with a Transfer carrying its own chunk size, the returned
// descriptor uses that instead.
func (c *ObjectStoreClient) StartUpload(blob Blob, chunkSize, totalBytes uint64) (Transfer, error) {
	transfer, err := NewTransfer(blob, chunkSize, totalBytes, "")
	if err != nil {
		return Transfer{}, err
	}

	req := &proto.FileChunk{
		Container:  blob.Container,
		Id:         blob.ID,
		ChunkSize:  chunkSize,
		TotalBytes: totalBytes,
	}
	resp, err := actor.Dispatch(c.hostCall, c.codec, c.binding, CapabilityID, OpStartUpload, req)
	if err != nil {
		return Transfer{}, err
	}
	return c.negotiate(transfer, resp)
}

// UploadChunk sends chunk index of an upload. The chunk echoes the transfer
// context, and any acknowledgement payload is ignored.
func (c *ObjectStoreClient) UploadChunk(transfer Transfer, index ChunkIndex, data []byte) error {
	req := &proto.FileChunk{
		SequenceNo: uint64(index),
		Container:  transfer.Container,
		Id:         transfer.BlobID,
		TotalBytes: transfer.TotalSize,
		ChunkSize:  transfer.ChunkSize,
		ChunkBytes: data,
		Context:    transfer.Context,
	}
	return c.invoke(OpUploadChunk, req, nil)
}

// StartDownload asks the provider to stream blob to the actor. The
// descriptor is computed from blob.ByteSize, and the provider may override
// the chunk size the same way as StartUpload.
func (c *ObjectStoreClient) StartDownload(blob Blob, chunkSize uint64, context string) (Transfer, error) {
	transfer, err := NewTransfer(blob, chunkSize, blob.ByteSize, context)
	if err != nil {
		return Transfer{}, err
	}

	req := &proto.StreamRequest{
		Id:        blob.ID,
		Container: blob.Container,
		ChunkSize: chunkSize,
		Context:   context,
	}
	resp, err := actor.Dispatch(c.hostCall, c.codec, c.binding, CapabilityID, OpStartDownload, req)
	if err != nil {
		return Transfer{}, err
	}
	return c.negotiate(transfer, resp)
}

// negotiate applies a provider chunk size from payload to requested. An
// empty payload, or a Transfer without a chunk size, leaves requested as is.
func (c *ObjectStoreClient) negotiate(requested Transfer, payload []byte) (Transfer, error) {
	if len(payload) == 0 {
		return requested, nil
	}

	var granted proto.Transfer
	if err := actor.Decode(c.codec, payload, &granted); err != nil {
		return Transfer{}, err
	}
	if granted.GetChunkSize() == 0 {
		return requested, nil
	}
	return requested.withChunkSize(granted.GetChunkSize()), nil
}

// DecodeFileChunk decodes an inbound ReceiveChunk payload. A nil codec uses codec.Default.
func DecodeFileChunk(c codec.Codec, payload []byte) (FileChunk, error) {
	var chunk proto.FileChunk
	if err := actor.Decode(codec.OrDefault(c), payload, &chunk); err != nil {
		return FileChunk{}, err
	}
	return fileChunkFromProto(&chunk), nil
}
