package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/piyonchu/sdreel/pkg/blob"
)

// One-shot converter: a single image in, one sector-padded RGB565 blob
// out. Use cmd/reelpack for multi-frame reels.
func main() {
	if len(os.Args) != 3 {
		os.Stderr.WriteString("usage: sdreel <input.png> <output.bin>\n")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		panic(err)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		panic(err)
	}

	if err := f.Close(); err != nil {
		panic(err)
	}

	out, err := os.Create(os.Args[2])
	if err != nil {
		panic(err)
	}

	bw := blob.NewWriter(out, blob.SectorSize)
	if err := bw.Frame(img); err != nil {
		panic(err)
	}

	if err := bw.Close(); err != nil {
		panic(err)
	}

	if err := out.Close(); err != nil {
		panic(err)
	}
}
