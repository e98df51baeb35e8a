/*
Package objectstore provides a client for the waSCC blob store capability
(wascc:blobstore).

Containers and blobs are managed with single calls. Blob contents move in
chunks:

  - Upload: call StartUpload, then UploadChunk for each ChunkIndex from 0 to
    Transfer.ChunkCount()-1. The provider may pick a different chunk size
    than requested; always slice data using the returned Transfer.
  - Download: call StartDownload, then handle OpReceiveChunk calls on the
    actor and decode each payload with DecodeFileChunk.

FileChunk.SequenceNo is always a 0-based ChunkIndex. Use Transfer.Offset and
Transfer.IndexAt to convert to and from ByteOffset. Transfer.TotalChunks
counts whole chunks only; the size of a trailing partial chunk is
Transfer.Remainder.

	t, err := store.StartUpload(objectstore.Blob{ID: "a.bin", Container: "c"}, 4096, uint64(len(data)))
	if err != nil {
		return err
	}
	for i := objectstore.ChunkIndex(0); uint64(i) < t.ChunkCount(); i++ {
		off := t.Offset(i)
		chunk := data[off : uint64(off)+t.ChunkLen(i)]
		if err := store.UploadChunk(t, i, chunk); err != nil {
			return err
		}
	}
*/
package objectstore
