package ply

import (
	"bytes"
	"context"
	"io"

	"github.com/hupe1980/plycloud/blobstore"
	"github.com/hupe1980/plycloud/element"
)

// Codec reads and writes PLY files through a BlobStore.
//
// Compression is chosen from the blob name (".gz", ".zst", ".lz4")
// unless fixed with WithCompression.
type Codec struct {
	store       blobstore.BlobStore
	compression *Compression
	binary      Format
	comments    []string
}

// Option configures a Codec.
type Option func(*Codec)

// WithCompression forces a compression regardless of the blob name.
func WithCompression(c Compression) Option {
	return func(k *Codec) {
		k.compression = &c
	}
}

// WithBinaryFormat sets the byte order used for binary writes.
// The default is BinaryLittleEndian.
func WithBinaryFormat(f Format) Option {
	return func(k *Codec) {
		if f.IsBinary() {
			k.binary = f
		}
	}
}

// WithWriteComment adds a header comment to every written file.
func WithWriteComment(comment string) Option {
	return func(k *Codec) {
		k.comments = append(k.comments, comment)
	}
}

// NewCodec creates a codec over store. A nil store uses the local
// file system with paths taken as given.
func NewCodec(store blobstore.BlobStore, opts ...Option) *Codec {
	if store == nil {
		store = blobstore.NewLocalStore("")
	}
	c := &Codec{
		store:  store,
		binary: BinaryLittleEndian,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codec) compressionFor(name string) Compression {
	if c.compression != nil {
		return *c.compression
	}
	return CompressionFromName(name)
}

// Read decodes the elements of the named blob.
func (c *Codec) Read(ctx context.Context, name string) ([]*element.Element, error) {
	f, err := c.ReadFile(ctx, name)
	if err != nil {
		return nil, err
	}
	return f.Elements, nil
}

// ReadFile decodes the named blob including its header.
func (c *Codec) ReadFile(ctx context.Context, name string) (*File, error) {
	blob, err := c.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	var src io.Reader
	if m, ok := blob.(blobstore.Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		src = bytes.NewReader(data)
	} else {
		src = blobstore.NewReader(ctx, blob)
	}

	r, err := decompress(src, c.compressionFor(name))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Decode(r)
}

// Write encodes elements to the named blob. A non-empty comment is
// added to the header after any configured comments.
func (c *Codec) Write(ctx context.Context, name string, elements []*element.Element, comment string, binary bool) error {
	h := &Header{Format: ASCII, Comments: append([]string(nil), c.comments...)}
	if binary {
		h.Format = c.binary
	}
	if comment != "" {
		h.Comments = append(h.Comments, comment)
	}
	return c.WriteFile(ctx, name, &File{Header: h, Elements: elements})
}

// WriteFile encodes f to the named blob. The blob is only committed when
// encoding succeeds.
func (c *Codec) WriteFile(ctx context.Context, name string, f *File) (err error) {
	w, err := c.store.Create(ctx, name)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if a, ok := w.(blobstore.Aborter); ok {
			_ = a.Abort()
		} else {
			_ = w.Close()
		}
	}()

	cw, err := compress(w, c.compressionFor(name))
	if err != nil {
		return err
	}
	if err := Encode(cw, f); err != nil {
		_ = cw.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		return err
	}
	return w.Close()
}
