package minio

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/hupe1980/plycloud/blobstore"
	"github.com/minio/minio-go/v7"
)

// Store implements blobstore.BlobStore for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a MinIO blob store. rootPrefix is prepended to all
// keys (e.g. "scans/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: rootPrefix}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// name maps an object key back to a blob name relative to the root prefix.
func (s *Store) name(key string) string {
	root := strings.TrimSuffix(s.prefix, "/")
	if root == "" {
		return key
	}
	return strings.TrimPrefix(strings.TrimPrefix(key, root), "/")
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey"
}

// contentType labels uploads so browsers and gateways do not sniff them.
func contentType(name string) string {
	switch path.Ext(name) {
	case ".gz":
		return "application/gzip"
	case ".zst":
		return "application/zstd"
	default:
		return "application/octet-stream"
	}
}

// Open opens a blob for reading. The object stays open until the blob is
// closed; reads are served by the object's own range requests.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}
	return &objectBlob{store: s, obj: obj, key: key, size: info.Size}, nil
}

// Create streams a new object. Nothing is visible until Close succeeds;
// the blob implements blobstore.Aborter.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	key := s.key(name)
	opts := minio.PutObjectOptions{ContentType: contentType(name)}
	return blobstore.NewUploadBlob(func(r io.Reader) error {
		_, err := s.client.PutObject(ctx, s.bucket, key, r, -1, opts)
		return err
	}), nil
}

// Put writes a blob with a single request.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	opts := minio.PutObjectOptions{ContentType: contentType(name)}
	_, err := s.client.PutObject(ctx, s.bucket, s.key(name), bytes.NewReader(data), int64(len(data)), opts)
	return err
}

// Delete removes a blob. Missing blobs are not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, s.key(name), minio.RemoveObjectOptions{}); err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

// List returns the names of all blobs under prefix, sorted.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.key(prefix), Recursive: true})
	for obj := range objects {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if n := s.name(obj.Key); n != "" {
			names = append(names, n)
		}
	}
	slices.Sort(names)
	return names, nil
}

type objectBlob struct {
	store *Store
	obj   *minio.Object
	key   string
	size  int64
}

func (b *objectBlob) Size() int64 {
	return b.size
}

func (b *objectBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if off < 0 || off >= b.size {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := b.obj.ReadAt(p, off)
	if err == io.EOF && n == len(p) {
		err = nil
	}
	return n, err
}

// ReadRange opens an independent ranged GET, so it may outlive ReadAt calls.
func (b *objectBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off < 0 || off >= b.size {
		return nil, io.EOF
	}
	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, min(off+length, b.size)-1); err != nil {
		return nil, err
	}
	return b.store.client.GetObject(ctx, b.store.bucket, b.key, opts)
}

func (b *objectBlob) Close() error {
	return b.obj.Close()
}
