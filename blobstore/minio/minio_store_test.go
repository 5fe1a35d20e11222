package minio

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-plycloud"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if _, err := client.ListBuckets(probeCtx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("ply\nformat ascii 1.0\nend_header\n")
	require.NoError(t, store.Put(ctx, "header.ply", data))

	blob, err := store.Open(ctx, "header.ply")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, len(data))
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, buf)

	rc, err := blob.ReadRange(ctx, 4, 6)
	require.NoError(t, err)
	part, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "format", string(part))
	require.NoError(t, rc.Close())
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "header.ply")

	wb, err := store.Create(ctx, "stream.ply")
	require.NoError(t, err)
	_, err = wb.Write([]byte("streamed data"))
	require.NoError(t, err)
	require.NoError(t, wb.Close())

	blob, err = store.Open(ctx, "stream.ply")
	require.NoError(t, err)
	assert.Equal(t, int64(13), blob.Size())
	require.NoError(t, blob.Close())

	require.NoError(t, store.Delete(ctx, "header.ply"))
	require.NoError(t, store.Delete(ctx, "stream.ply"))
	_, err = store.Open(ctx, "header.ply")
	require.Error(t, err)
}

func TestStore_Key(t *testing.T) {
	store := NewStore(nil, "bucket", "scans/")
	assert.Equal(t, "scans/room.ply", store.key("room.ply"))
	assert.Equal(t, "scans", store.key(""))

	store = NewStore(nil, "bucket", "")
	assert.Equal(t, "room.ply", store.key("room.ply"))
}

func TestStore_Name(t *testing.T) {
	store := NewStore(nil, "bucket", "scans/")
	assert.Equal(t, "room.ply", store.name("scans/room.ply"))
	assert.Equal(t, "a/b.ply.zst", store.name(store.key("a/b.ply.zst")))

	store = NewStore(nil, "bucket", "")
	assert.Equal(t, "room.ply", store.name("room.ply"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/gzip", contentType("room.ply.gz"))
	assert.Equal(t, "application/zstd", contentType("room.ply.zst"))
	assert.Equal(t, "application/octet-stream", contentType("room.ply"))
}
