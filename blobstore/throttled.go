package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a BlobStore and limits read bandwidth.
// Writes and metadata operations pass through unchanged.
type ThrottledStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewThrottledStore limits reads from inner to bytesPerSec.
// A non-positive limit disables throttling.
func NewThrottledStore(inner BlobStore, bytesPerSec int64) *ThrottledStore {
	limit := rate.Inf
	burst := 0
	if bytesPerSec > 0 {
		limit = rate.Limit(bytesPerSec)
		burst = int(bytesPerSec)
	}
	return &ThrottledStore{
		inner:   inner,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledBlob{inner: b, limiter: s.limiter}, nil
}

func (s *ThrottledStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	return s.inner.Create(ctx, name)
}

func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	return s.inner.Put(ctx, name, data)
}

func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

type throttledBlob struct {
	inner   Blob
	limiter *rate.Limiter
}

// wait reserves n bytes, in chunks no larger than the burst size.
func (b *throttledBlob) wait(ctx context.Context, n int) error {
	if b.limiter.Limit() == rate.Inf {
		return nil
	}
	burst := b.limiter.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := b.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

func (b *throttledBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := b.wait(ctx, len(p)); err != nil {
		return 0, err
	}
	return b.inner.ReadAt(ctx, p, off)
}

func (b *throttledBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	rc, err := b.inner.ReadRange(ctx, off, length)
	if err != nil {
		return nil, err
	}
	return &throttledReader{ctx: ctx, rc: rc, blob: b}, nil
}

func (b *throttledBlob) Close() error {
	return b.inner.Close()
}

func (b *throttledBlob) Size() int64 {
	return b.inner.Size()
}

type throttledReader struct {
	ctx  context.Context
	rc   io.ReadCloser
	blob *throttledBlob
}

func (r *throttledReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	if n > 0 {
		if werr := r.blob.wait(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (r *throttledReader) Close() error {
	return r.rc.Close()
}
