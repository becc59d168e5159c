package rgb565

import (
	"image"
	"image/color"
)

// New returns a framebuffer covering r with all pixels black.
func New(r image.Rectangle) *Image {
	return &Image{
		pixels: make([]byte, 2*r.Dx()*r.Dy()),
		stride: 2 * r.Dx(),
		bounds: r,
	}
}

// Image is an RGB565 framebuffer holding pixels in the card's wire layout:
// two bytes per pixel, big endian, row-major. It implements the draw.Image
// interface.
type Image struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (d *Image) Bounds() image.Rectangle {
	return d.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (d *Image) ColorModel() color.Model {
	return Model
}

// At implements the image.Image (and draw.Image) interface.
func (d *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(d.bounds)) {
		return Color(0)
	}
	i := d.index(x, y)
	return Color(d.pixels[i])<<8 | Color(d.pixels[i+1])
}

// Set implements the draw.Image interface.
func (d *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(d.bounds)) {
		return
	}
	r, g, b, _ := c.RGBA()
	rgb := fromRGBA(r, g, b)
	i := d.index(x, y)
	d.pixels[i] = byte(rgb >> 8)
	d.pixels[i+1] = byte(rgb)
}

func (d *Image) index(x, y int) int {
	return (y-d.bounds.Min.Y)*d.stride + 2*(x-d.bounds.Min.X)
}

// Pix returns the underlying pixel bytes in card order.
func (d *Image) Pix() []byte {
	return d.pixels
}
