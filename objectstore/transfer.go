package objectstore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChunkSize is returned when a transfer would use a chunk size of zero.
	ErrInvalidChunkSize = errors.New("chunk size must be greater than zero")

	// ErrUnalignedOffset is returned when a byte offset does not fall on a chunk boundary.
	ErrUnalignedOffset = errors.New("byte offset is not aligned to a chunk boundary")
)

// ByteOffset is a position in a blob measured in bytes.
type ByteOffset uint64

// ChunkIndex is a 0-based chunk position within a transfer.
type ChunkIndex uint64

// NewTransfer builds a transfer descriptor for totalSize bytes split into chunkSize chunks.
func NewTransfer(blob Blob, chunkSize, totalSize uint64, context string) (Transfer, error) {
	if chunkSize == 0 {
		return Transfer{}, ErrInvalidChunkSize
	}
	return Transfer{
		BlobID:      blob.ID,
		Container:   blob.Container,
		ChunkSize:   chunkSize,
		TotalSize:   totalSize,
		TotalChunks: totalSize / chunkSize,
		Context:     context,
	}, nil
}

// Remainder is the length of the partial final chunk, or zero when the
// total size divides evenly.
func (t Transfer) Remainder() uint64 {
	if t.ChunkSize == 0 {
		return 0
	}
	return t.TotalSize % t.ChunkSize
}

// ChunkCount is the number of chunks that carry data, including a partial final chunk.
func (t Transfer) ChunkCount() uint64 {
	if t.Remainder() > 0 {
		return t.TotalChunks + 1
	}
	return t.TotalChunks
}

// ChunkLen reports how many bytes chunk i carries. Indexes past the end carry none.
func (t Transfer) ChunkLen(i ChunkIndex) uint64 {
	switch idx := uint64(i); {
	case idx < t.TotalChunks:
		return t.ChunkSize
	case idx == t.TotalChunks:
		return t.Remainder()
	default:
		return 0
	}
}

// Offset returns the byte offset at which chunk i starts.
func (t Transfer) Offset(i ChunkIndex) ByteOffset {
	return ByteOffset(uint64(i) * t.ChunkSize)
}

// IndexAt returns the chunk that starts at off.
func (t Transfer) IndexAt(off ByteOffset) (ChunkIndex, error) {
	if t.ChunkSize == 0 {
		return 0, ErrInvalidChunkSize
	}
	if uint64(off)%t.ChunkSize != 0 {
		return 0, fmt.Errorf("%w: offset %d, chunk size %d", ErrUnalignedOffset, off, t.ChunkSize)
	}
	return ChunkIndex(uint64(off) / t.ChunkSize), nil
}

// withChunkSize recomputes chunk counts for a provider selected chunk size.
func (t Transfer) withChunkSize(chunkSize uint64) Transfer {
	t.ChunkSize = chunkSize
	t.TotalChunks = t.TotalSize / chunkSize
	return t
}
