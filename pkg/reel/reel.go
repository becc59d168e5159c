// Package reel builds the multi-frame blobs the displayer streams off
// the card: numbered source frames in, one sector-padded RGB565 blob out.
package reel

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/piyonchu/sdreel/pkg/blob"
)

func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Reel {
	r := &Reel{
		fs:  fs,
		log: logger,
		// options
		sectorSize: blob.SectorSize,
		count:      -1,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Reel is an ordered sequence of frames named 1.png, 2.png, ... in one
// directory. Playback order on the display is the numeric order, so a
// missing frame is skipped rather than reshuffled.
type Reel struct {
	fs  afero.Fs
	log *zap.Logger
	// options
	width      int
	height     int
	sectorSize int
	count      int
}

// Count returns the declared frame count, or the highest frame number
// found in the directory when none was declared.
func (r *Reel) Count() (int, error) {
	if r.count >= 0 {
		return r.count, nil
	}

	infos, err := afero.ReadDir(r.fs, ".")
	if err != nil {
		return 0, fmt.Errorf("scan frames failed: %w", err)
	}

	var max int
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		if !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(name, filepath.Ext(name)))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return max, nil
}

// Pack encodes every frame in order into w and pads the result to a
// sector boundary once at the end. Missing or undecodable frames are
// skipped with a warning; the frames on either side still land in
// sequence. Returns the total blob length, padding included.
func (r *Reel) Pack(w io.Writer) (int64, error) {
	count, err := r.Count()
	if err != nil {
		return 0, err
	}

	bw := blob.NewWriter(w, r.sectorSize)

	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("%d.png", i)

		img, err := r.load(name)
		if err != nil {
			r.log.With(zap.String("frame", name), zap.Error(err)).Warn("skipping frame")
			continue
		}

		if r.width > 0 && r.height > 0 {
			img = imaging.Fill(img, r.width, r.height, imaging.Center, imaging.Lanczos)
		}

		if err := bw.Frame(img); err != nil {
			return bw.Written(), fmt.Errorf("encode frame %s failed: %w", name, err)
		}
	}

	if err := bw.Close(); err != nil {
		return bw.Written(), fmt.Errorf("pad blob failed: %w", err)
	}

	return bw.Written(), nil
}

// PackFile packs into path on fs, writing through an xid-named temp file
// so a failed run never leaves a half-built blob behind.
func (r *Reel) PackFile(fs afero.Fs, path string) (int64, error) {
	tmp := filepath.Join(filepath.Dir(path), xid.New().String()+".bin")

	f, err := fs.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("create blob failed: %w", err)
	}

	n, packErr := r.Pack(f)

	if err := f.Close(); err != nil && packErr == nil {
		packErr = fmt.Errorf("close blob failed: %w", err)
	}

	if packErr != nil {
		_ = fs.Remove(tmp)
		return n, packErr
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return n, fmt.Errorf("rename blob failed: %w", err)
	}

	return n, nil
}

func (r *Reel) load(name string) (image.Image, error) {
	f, err := r.fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("frame not found")
		}
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	return img, nil
}
