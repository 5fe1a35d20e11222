package blobstore

import (
	"context"
	"io"
)

// Reader reads a Blob sequentially from the start.
type Reader struct {
	ctx  context.Context
	blob Blob
	off  int64
}

// NewReader returns an io.Reader over the whole blob.
func NewReader(ctx context.Context, blob Blob) *Reader {
	return &Reader{ctx: ctx, blob: blob}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.off >= r.blob.Size() {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if rem := r.blob.Size() - r.off; int64(len(p)) > rem {
		p = p[:rem]
	}
	n, err := r.blob.ReadAt(r.ctx, p, r.off)
	r.off += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}
