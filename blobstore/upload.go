package blobstore

import (
	"io"
	"sync/atomic"
)

// UploadBlob is a WritableBlob that streams everything written to it into
// an upload running on its own goroutine. Remote stores use it to turn a
// single-shot upload call into a streaming write.
type UploadBlob struct {
	pw     *io.PipeWriter
	done   chan error
	closed atomic.Bool
}

// NewUploadBlob starts upload with a reader over the data written to the
// returned blob. The upload sees io.EOF after Close and ErrAborted after
// Abort.
func NewUploadBlob(upload func(r io.Reader) error) *UploadBlob {
	pr, pw := io.Pipe()
	b := &UploadBlob{pw: pw, done: make(chan error, 1)}
	go func() {
		err := upload(pr)
		// Unblock writers if the upload stopped reading early.
		_ = pr.CloseWithError(err)
		b.done <- err
	}()
	return b
}

func (b *UploadBlob) Write(p []byte) (int, error) {
	if b.closed.Load() {
		return 0, io.ErrClosedPipe
	}
	return b.pw.Write(p)
}

// Sync is a no-op; data is committed by Close.
func (b *UploadBlob) Sync() error {
	return nil
}

// Close ends the stream and waits for the upload result.
func (b *UploadBlob) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return io.ErrClosedPipe
	}
	if err := b.pw.Close(); err != nil {
		return err
	}
	return <-b.done
}

// Abort fails the stream with ErrAborted and waits for the upload to give
// up. It is a no-op after Close.
func (b *UploadBlob) Abort() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	_ = b.pw.CloseWithError(ErrAborted)
	<-b.done
	return nil
}
