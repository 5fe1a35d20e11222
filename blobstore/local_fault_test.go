package blobstore

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/hupe1980/plycloud/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Faults(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		fault fs.Fault
		write []byte
	}{
		{"Write", fs.Fault{FailAfterBytes: 8}, []byte("ply\nformat ascii 1.0\n")},
		{"Sync", fs.Fault{FailAfterBytes: -1, FailOnSync: true}, []byte("ply\n")},
		{"Close", fs.Fault{FailAfterBytes: -1, FailOnClose: true}, []byte("ply\n")},
		{"Rename", fs.Fault{FailAfterBytes: -1, FailOnRename: true}, []byte("ply\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			ffs := fs.NewFaultyFS(nil)
			ffs.AddRule("cloud.ply", tt.fault)
			store := newLocalStore(dir, ffs)

			err := store.Put(ctx, "cloud.ply", tt.write)
			require.Error(t, err)
			assert.True(t, errors.Is(err, fs.ErrInjected))

			// Neither the target nor the temporary file survives.
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
			_, err = store.Open(ctx, "cloud.ply")
			assert.ErrorIs(t, err, ErrNotFound)

			// Other blobs are unaffected.
			require.NoError(t, store.Put(ctx, "other.ply", []byte("ply\n")))
		})
	}
}
