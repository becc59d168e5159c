package rgb565

import (
	"image/color"
	"testing"
)

func TestFrom888(t *testing.T) {
	for _, tt := range []struct {
		r, g, b uint8
		want    Color
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xffff},
		{248, 0, 0, 0xf800},
		{0, 252, 0, 0x07e0},
		{0, 0, 248, 0x001f},
		{255, 0, 0, 0xf800},
		{0, 255, 0, 0x07e0},
		{0, 0, 255, 0x001f},
		{7, 3, 7, 0x0000},
		{0x12, 0x34, 0x56, 0x11aa},
	} {
		if got := From888(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("From888(%d, %d, %d) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestFrom888Truncates(t *testing.T) {
	// Unpacking the 5-6-5 fields must reproduce each channel with its
	// low 3 (or 2 for green) bits dropped, never rounded up.
	for v := 0; v < 256; v++ {
		c := From888(uint8(v), uint8(v), uint8(v))
		r := uint8(c>>11) << 3
		g := uint8(c>>5&0x3f) << 2
		b := uint8(c&0x1f) << 3
		if r != uint8(v)&0xf8 {
			t.Errorf("red %d round-tripped to %#02x, want %#02x", v, r, uint8(v)&0xf8)
		}
		if g != uint8(v)&0xfc {
			t.Errorf("green %d round-tripped to %#02x, want %#02x", v, g, uint8(v)&0xfc)
		}
		if b != uint8(v)&0xf8 {
			t.Errorf("blue %d round-tripped to %#02x, want %#02x", v, b, uint8(v)&0xf8)
		}
		if _, _, _, a := c.RGBA(); a != 0xffff {
			t.Errorf("alpha for %d = %#04x, want opaque", v, a)
		}
	}
}

func TestModel(t *testing.T) {
	for _, tt := range []struct {
		in   color.Color
		want Color
	}{
		{color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0xffff},
		{color.RGBA{A: 255}, 0x0000},
		{color.RGBA{R: 248, A: 255}, 0xf800},
		{color.RGBA{G: 252, A: 255}, 0x07e0},
		{color.RGBA{B: 248, A: 255}, 0x001f},
		{Color(0x1234), 0x1234},
	} {
		got := Model.Convert(tt.in)
		if got != tt.want {
			t.Errorf("Convert(%v) = %#04x, want %#04x", tt.in, got, tt.want)
		}
	}
}

func TestModelMatchesFrom888(t *testing.T) {
	for v := 0; v < 256; v += 3 {
		in := color.RGBA{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2), A: 255}
		want := From888(in.R, in.G, in.B)
		if got := Model.Convert(in); got != want {
			t.Errorf("Convert(%v) = %#04x, From888 = %#04x", in, got, want)
		}
	}
}

func TestRGBAExtremes(t *testing.T) {
	r, g, b, _ := Color(0xffff).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("white round-trip = %#04x %#04x %#04x, want full channels", r, g, b)
	}
	r, g, b, _ = Color(0).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("black round-trip = %#04x %#04x %#04x, want zero channels", r, g, b)
	}
}
