package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hupe1980/plycloud/internal/fs"
	"github.com/hupe1980/plycloud/internal/mmap"
)

// LocalStore implements BlobStore using the local file system.
//
// An empty root resolves names against the working directory, so absolute
// paths and relative paths can be used directly.
type LocalStore struct {
	root string
	fsys fs.FileSystem
}

// NewLocalStore creates a new LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return newLocalStore(root, fs.Default)
}

func newLocalStore(root string, fsys fs.FileSystem) *LocalStore {
	return &LocalStore{root: root, fsys: fsys}
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Open opens a blob for reading. Files are memory-mapped.
func (s *LocalStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := mmap.Open(s.path(name))
	if err != nil {
		return nil, err
	}
	_ = m.Advise(mmap.AccessSequential)
	return &localBlob{m: m}, nil
}

// Create creates a blob for streaming writes.
// Data is written to a temporary file that is renamed into place on Close.
func (s *LocalStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.path(name)
	if err := s.fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := s.fsys.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = s.fsys.Remove(f.Name())
		return nil, err
	}
	return &localWritableBlob{f: f, fsys: s.fsys, path: path}, nil
}

// Put writes a blob atomically.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.(*localWritableBlob).Abort()
		return err
	}
	return w.Close()
}

// Delete removes a blob.
func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.fsys.Remove(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// List returns all blobs under the root whose slash-separated name has the prefix.
func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	root := s.root
	if root == "" {
		root = "."
	}
	var names []string
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(filepath.Base(name), ".") && strings.Contains(name, ".tmp-") {
			return nil
		}
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	return b.m.ReadAt(p, off)
}

func (b *localBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data := b.m.Bytes()
	if off < 0 || off >= int64(len(data)) {
		return nil, io.EOF
	}
	end := min(off+length, int64(len(data)))
	return io.NopCloser(bytes.NewReader(data[off:end])), nil
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

func (b *localBlob) Size() int64 {
	return int64(b.m.Size())
}

func (b *localBlob) Bytes() ([]byte, error) {
	data := b.m.Bytes()
	if data == nil && b.m.Size() > 0 {
		return nil, mmap.ErrClosed
	}
	return data, nil
}

type localWritableBlob struct {
	f      fs.File
	fsys   fs.FileSystem
	path   string
	closed bool
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	if w.closed {
		return 0, os.ErrClosed
	}
	return w.f.Write(p)
}

func (w *localWritableBlob) Sync() error {
	return w.f.Sync()
}

func (w *localWritableBlob) Close() error {
	if w.closed {
		return os.ErrClosed
	}
	w.closed = true
	if err := w.f.Sync(); err != nil {
		_ = w.f.Close()
		_ = w.fsys.Remove(w.f.Name())
		return err
	}
	if err := w.f.Close(); err != nil {
		_ = w.fsys.Remove(w.f.Name())
		return err
	}
	if err := w.fsys.Rename(w.f.Name(), w.path); err != nil {
		_ = w.fsys.Remove(w.f.Name())
		return err
	}
	return nil
}

// Abort discards the temporary file.
func (w *localWritableBlob) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true
	_ = w.f.Close()
	return w.fsys.Remove(w.f.Name())
}
