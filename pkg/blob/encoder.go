package blob

import (
	"fmt"
	"image"
	"io"

	"github.com/piyonchu/sdreel/pkg/rgb565"
)

// Encode converts src into the raw card format: one big-endian RGB565
// word per pixel, rows top to bottom, pixels left to right. The result
// is always exactly 2*w*h bytes, with no header and no padding.
func Encode(src image.Image) []byte {
	b := src.Bounds()
	dst := rgb565.New(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}

	return dst.Pix()
}

// EncodeTo writes the encoded form of src to w, returning the number of
// bytes written. Output order is identical to Encode.
func EncodeTo(w io.Writer, src image.Image) (int64, error) {
	n, err := w.Write(Encode(src))
	return int64(n), err
}

// Trace dumps every pixel of src to w as one "x,y -> hex" line, the same
// format the hardware simulator logs, for eyeballing against a waveform.
func Trace(w io.Writer, src image.Image) error {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := rgb565.Model.Convert(src.At(x, y)).(rgb565.Color)
			if _, err := fmt.Fprintf(w, "%03d,%03d -> %04x\n", x, y, uint16(c)); err != nil {
				return err
			}
		}
	}
	return nil
}
