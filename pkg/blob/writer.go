package blob

import (
	"image"
	"io"

	"github.com/pkg/errors"
)

// NewWriter returns a Writer accumulating frames into w. A sectorSize of
// zero means the default 512.
func NewWriter(w io.Writer, sectorSize int) *Writer {
	if sectorSize <= 0 {
		sectorSize = SectorSize
	}
	return &Writer{w: w, sectorSize: sectorSize}
}

// Writer concatenates encoded frames into one blob and pads it to a
// sector boundary exactly once, on Close. It keeps the padding state
// itself so callers cannot pad a non-aligned blob twice.
type Writer struct {
	w          io.Writer
	sectorSize int
	written    int64
	closed     bool
}

// Frame encodes src and appends it to the blob.
func (b *Writer) Frame(src image.Image) error {
	if b.closed {
		return errors.New("blob already closed")
	}
	n, err := EncodeTo(b.w, src)
	b.written += n
	return err
}

// Write appends raw, already encoded bytes to the blob.
func (b *Writer) Write(p []byte) (int, error) {
	if b.closed {
		return 0, errors.New("blob already closed")
	}
	n, err := b.w.Write(p)
	b.written += int64(n)
	return n, err
}

// Written returns the number of blob bytes so far, padding included once
// closed.
func (b *Writer) Written() int64 {
	return b.written
}

// Close pads the blob to the next sector boundary. Closing twice is a
// no-op.
func (b *Writer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	pad := Padding(int(b.written%int64(b.sectorSize)), b.sectorSize)
	if pad == 0 {
		return nil
	}

	n, err := b.w.Write(make([]byte, pad))
	b.written += int64(n)
	return err
}
