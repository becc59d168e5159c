package reel

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func writeFrame(t *testing.T, fs afero.Fs, name string, c color.Color, w, h int) {
	t.Helper()

	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, m); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, name, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestPackSkipsMissingFrames(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFrame(t, fs, "1.png", color.RGBA{248, 0, 0, 255}, 4, 4)
	// 2.png deliberately missing
	writeFrame(t, fs, "3.png", color.RGBA{0, 252, 0, 255}, 4, 4)

	r := New(fs, zap.NewNop(), WithCount(3), WithSectorSize(64))

	var buf bytes.Buffer
	n, err := r.Pack(&buf)
	if err != nil {
		t.Fatal(err)
	}

	// Two 4x4 frames of 32 bytes each, already sector aligned.
	if n != 64 {
		t.Errorf("Pack() = %d bytes, want 64", n)
	}
	for i := 0; i < 32; i += 2 {
		if buf.Bytes()[i] != 0xf8 || buf.Bytes()[i+1] != 0x00 {
			t.Fatalf("frame 1 word %d = %#02x%02x, want f800", i/2, buf.Bytes()[i], buf.Bytes()[i+1])
		}
	}
	for i := 32; i < 64; i += 2 {
		if buf.Bytes()[i] != 0x07 || buf.Bytes()[i+1] != 0xe0 {
			t.Fatalf("frame 3 word %d = %#02x%02x, want 07e0", i/2, buf.Bytes()[i], buf.Bytes()[i+1])
		}
	}
}

func TestPackPadsToSector(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFrame(t, fs, "1.png", color.White, 4, 4)

	r := New(fs, zap.NewNop(), WithCount(1))

	var buf bytes.Buffer
	n, err := r.Pack(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if n != 512 {
		t.Errorf("Pack() = %d bytes, want one padded sector", n)
	}
	for i, b := range buf.Bytes()[32:] {
		if b != 0 {
			t.Fatalf("padding byte %d = %#02x, want 0", 32+i, b)
		}
	}
}

func TestPackFitsGeometry(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFrame(t, fs, "1.png", color.RGBA{248, 0, 0, 255}, 8, 8)

	r := New(fs, zap.NewNop(), WithCount(1), WithGeometry(2, 2), WithSectorSize(8))

	var buf bytes.Buffer
	n, err := r.Pack(&buf)
	if err != nil {
		t.Fatal(err)
	}

	// 2x2 frame, 8 bytes, aligned.
	if n != 8 {
		t.Errorf("Pack() = %d bytes, want 8", n)
	}
}

func TestCountScansDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFrame(t, fs, "1.png", color.Black, 2, 2)
	writeFrame(t, fs, "2.png", color.Black, 2, 2)
	writeFrame(t, fs, "10.png", color.Black, 2, 2)
	writeFrame(t, fs, "cover.png", color.Black, 2, 2)
	if err := afero.WriteFile(fs, "notes.txt", []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r := New(fs, zap.NewNop())
	count, err := r.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 10 {
		t.Errorf("Count() = %d, want 10", count)
	}
}

func TestPackFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFrame(t, fs, "1.png", color.White, 4, 4)

	r := New(fs, zap.NewNop(), WithCount(1))

	n, err := r.PackFile(fs, "all.bin")
	if err != nil {
		t.Fatal(err)
	}
	if n != 512 {
		t.Errorf("PackFile() = %d bytes, want 512", n)
	}

	bs, err := afero.ReadFile(fs, "all.bin")
	if err != nil {
		t.Fatal(err)
	}
	if len(bs) != 512 {
		t.Errorf("blob file is %d bytes, want 512", len(bs))
	}

	// No temp files left behind.
	infos, err := afero.ReadDir(fs, ".")
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		for _, info := range infos {
			t.Logf("left behind: %s", info.Name())
		}
		t.Errorf("directory has %d entries, want 2", len(infos))
	}
}
