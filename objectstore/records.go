package objectstore

import proto "github.com/wascc/actor-sdk-go/proto/objectstore"

// Container identifies a group of blobs.
type Container struct {
	ID string
}

// Blob describes a stored object. The bytes themselves travel as FileChunks.
type Blob struct {
	ID        string
	Container string
	ByteSize  uint64
}

// Transfer describes a chunked upload or download. TotalChunks counts whole
// chunks only; see Remainder and ChunkCount for the partial final chunk.
type Transfer struct {
	BlobID      string
	Container   string
	ChunkSize   uint64
	TotalSize   uint64
	TotalChunks uint64
	Context     string
}

// FileChunk carries one chunk of a transfer. SequenceNo is the 0-based chunk index.
type FileChunk struct {
	SequenceNo ChunkIndex
	Container  string
	ID         string
	TotalBytes uint64
	ChunkSize  uint64
	ChunkBytes []byte
	Context    string
}

func blobFromProto(b *proto.Blob) Blob {
	return Blob{ID: b.GetId(), Container: b.GetContainer(), ByteSize: b.GetByteSize()}
}

func blobsFromProto(list []*proto.Blob) []Blob {
	if len(list) == 0 {
		return nil
	}
	blobs := make([]Blob, 0, len(list))
	for _, b := range list {
		blobs = append(blobs, blobFromProto(b))
	}
	return blobs
}

func fileChunkFromProto(c *proto.FileChunk) FileChunk {
	return FileChunk{
		SequenceNo: ChunkIndex(c.GetSequenceNo()),
		Container:  c.GetContainer(),
		ID:         c.GetId(),
		TotalBytes: c.GetTotalBytes(),
		ChunkSize:  c.GetChunkSize(),
		ChunkBytes: c.GetChunkBytes(),
		Context:    c.GetContext(),
	}
}
