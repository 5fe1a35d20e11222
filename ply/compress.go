package ply

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is the stream compression wrapped around a PLY file.
type Compression uint8

const (
	// CompressionNone stores the PLY stream as is.
	CompressionNone Compression = iota
	// CompressionGzip wraps the stream in gzip (".gz").
	CompressionGzip
	// CompressionZstd wraps the stream in zstd (".zst").
	CompressionZstd
	// CompressionLZ4 wraps the stream in an LZ4 frame (".lz4").
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", c)
	}
}

// CompressionFromName picks the compression from a file extension.
func CompressionFromName(name string) Compression {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(name, ".zst"):
		return CompressionZstd
	case strings.HasSuffix(name, ".lz4"):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

var zstdDecoderPool sync.Pool

func getZstdDecoder(r io.Reader) (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		dec := v.(*zstd.Decoder)
		if err := dec.Reset(r); err != nil {
			return nil, err
		}
		return dec, nil
	}
	return zstd.NewReader(r)
}

func putZstdDecoder(dec *zstd.Decoder) {
	_ = dec.Reset(nil)
	zstdDecoderPool.Put(dec)
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error { return r.close() }

// decompress wraps r according to c.
func decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case CompressionZstd:
		dec, err := getZstdDecoder(r)
		if err != nil {
			return nil, err
		}
		return &readCloser{Reader: dec, close: func() error {
			putZstdDecoder(dec)
			return nil
		}}, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("ply: unsupported compression %s", c)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// compress wraps w according to c. Closing the result flushes the
// compressed stream but does not close w.
func compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("ply: unsupported compression %s", c)
	}
}
