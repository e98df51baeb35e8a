package objectstore

import (
	"errors"
	"testing"
)

func TestNewTransfer(t *testing.T) {
	blob := Blob{ID: "b", Container: "c"}

	tt := []struct {
		name        string
		chunkSize   uint64
		totalSize   uint64
		totalChunks uint64
		remainder   uint64
		chunkCount  uint64
	}{
		{"even split", 100, 1000, 10, 0, 10},
		{"partial tail", 100, 1050, 10, 50, 11},
		{"smaller than one chunk", 4096, 10, 0, 10, 1},
		{"empty blob", 64, 0, 0, 0, 0},
		{"single byte chunks", 1, 3, 3, 0, 3},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := NewTransfer(blob, tc.chunkSize, tc.totalSize, "ctx")
			if err != nil {
				t.Fatalf("NewTransfer returned error: %v", err)
			}
			if tr.TotalChunks != tc.totalChunks {
				t.Errorf("TotalChunks = %d, want %d", tr.TotalChunks, tc.totalChunks)
			}
			if tr.Remainder() != tc.remainder {
				t.Errorf("Remainder = %d, want %d", tr.Remainder(), tc.remainder)
			}
			if tr.ChunkCount() != tc.chunkCount {
				t.Errorf("ChunkCount = %d, want %d", tr.ChunkCount(), tc.chunkCount)
			}

			// Chunk lengths must add up to the total size.
			var sum uint64
			for i := ChunkIndex(0); uint64(i) < tr.ChunkCount(); i++ {
				sum += tr.ChunkLen(i)
			}
			if sum != tc.totalSize {
				t.Errorf("chunk lengths sum to %d, want %d", sum, tc.totalSize)
			}
			if tr.ChunkLen(ChunkIndex(tr.ChunkCount())) != 0 {
				t.Errorf("expected no bytes past the final chunk")
			}
			if tr.BlobID != "b" || tr.Container != "c" || tr.Context != "ctx" {
				t.Errorf("unexpected identity fields %+v", tr)
			}
		})
	}

	t.Run("zero chunk size", func(t *testing.T) {
		if _, err := NewTransfer(blob, 0, 10, ""); !errors.Is(err, ErrInvalidChunkSize) {
			t.Fatalf("expected ErrInvalidChunkSize, got %v", err)
		}
	})
}

func TestOffsetConversions(t *testing.T) {
	tr, _ := NewTransfer(Blob{}, 256, 1000, "")

	for i := ChunkIndex(0); i < 5; i++ {
		off := tr.Offset(i)
		if off != ByteOffset(uint64(i)*256) {
			t.Fatalf("Offset(%d) = %d", i, off)
		}
		back, err := tr.IndexAt(off)
		if err != nil || back != i {
			t.Fatalf("IndexAt(%d) = %d, %v; want %d", off, back, err, i)
		}
	}

	if _, err := tr.IndexAt(100); !errors.Is(err, ErrUnalignedOffset) {
		t.Fatalf("expected ErrUnalignedOffset, got %v", err)
	}

	if _, err := (Transfer{}).IndexAt(0); !errors.Is(err, ErrInvalidChunkSize) {
		t.Fatalf("expected ErrInvalidChunkSize for zero chunk size, got %v", err)
	}
}

func TestWithChunkSize(t *testing.T) {
	tr, _ := NewTransfer(Blob{ID: "b"}, 100, 1050, "ctx")
	got := tr.withChunkSize(500)

	if got.ChunkSize != 500 || got.TotalChunks != 2 || got.Remainder() != 50 {
		t.Fatalf("unexpected recomputed transfer %+v", got)
	}
	if got.TotalSize != 1050 || got.BlobID != "b" || got.Context != "ctx" {
		t.Fatalf("identity fields changed: %+v", got)
	}
}
