// Package blobstore provides the storage abstraction behind the PLY codec.
//
// BlobStore is the interface for reading and writing whole blobs. A blob is
// one file (for example "scans/room.ply" or "scans/room.ply.zst").
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap reads and atomic writes
//   - MemoryStore: In-memory store for tests
//   - ThrottledStore: Wraps another store with a read bandwidth limit
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Create(ctx, name) (WritableBlob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Remote stores build streaming writes on UploadBlob, which pipes Write
// calls into a single upload call and supports Abort.
//
// Use NewReader to consume a Blob sequentially:
//
//	blob, err := store.Open(ctx, "room.ply")
//	if err != nil { ... }
//	defer blob.Close()
//	r := blobstore.NewReader(ctx, blob)
package blobstore
