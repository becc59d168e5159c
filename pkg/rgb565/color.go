package rgb565

import "image/color"

// Color is a 16-bit RGB565 value: 5 bits red, 6 bits green, 5 bits blue.
// This is the pixel format the FPGA reads straight off the card:
//
//	bit 15       8  7       0
//	    RRRRRGGG     GGGBBBBB
//
// It implements the color.Color interface.
type Color uint16

// Model converts any color.Color to an RGB565 Color by channel truncation.
var Model color.Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return fromRGBA(r, g, b)
}

// From888 packs 8-bit channels into an RGB565 code. The low bits of each
// channel are truncated, not rounded, so the conversion carries a slight
// darkening bias. That matches what the display expects back after the
// same truncation on the hardware side.
func From888(r, g, b uint8) Color {
	return Color(r&0xf8)<<8 | Color(g&0xfc)<<3 | Color(b)>>3
}

// fromRGBA packs the 16-bit channels of a color.Color, keeping the top
// 5 or 6 bits of each.
func fromRGBA(r, g, b uint32) Color {
	return Color((r & 0xf800) | (g&0xfc00)>>5 | (b&0xf800)>>11)
}

// RGBA implements the color.Color interface. The short bit patterns are
// replicated into the low bits so that the minimum and maximum 5/6-bit
// values map to the minimum and maximum 16-bit channel values. Alpha is
// always opaque; the format has no transparency.
func (c Color) RGBA() (r, g, b, a uint32) {
	rBits := uint32(c & 0xf800) // RRRRR00000000000
	gBits := uint32(c & 0x07e0) // 00000GGGGGG00000
	bBits := uint32(c & 0x001f) // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xffff
	return
}
