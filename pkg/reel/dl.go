package reel

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewDownloader(fs afero.Fs, logger *zap.Logger) *Downloader {
	return &Downloader{
		cli: resty.New().SetDoNotParseResponse(true),
		fs:  fs,
		log: logger,
	}
}

// Downloader seeds a reel directory from source URLs, saving them under
// their frame numbers.
type Downloader struct {
	fs  afero.Fs
	cli *resty.Client
	log *zap.Logger
}

// Fetch downloads each URL as frame i+1. A frame is always stored as
// N.png whatever the source extension was, since that is the name Pack
// opens and image.Decode sniffs the real format from the bytes. Frames
// already on disk are left alone.
func (d *Downloader) Fetch(urls []string) error {
	for i, raw := range urls {
		name := fmt.Sprintf("%d.png", i+1)

		if exists, err := afero.Exists(d.fs, name); err != nil {
			return err
		} else if exists {
			d.log.With(zap.String("frame", name)).Debug("already fetched")
			continue
		}

		bs, err := d.Get(raw)
		if err != nil {
			return fmt.Errorf("fetch frame %d failed: %w", i+1, err)
		}

		if err := afero.WriteFile(d.fs, name, bs, 0644); err != nil {
			return err
		}

		d.log.With(zap.String("url", raw), zap.String("frame", name)).Debug("frame saved")
	}

	return nil
}

func (d *Downloader) Get(url string) ([]byte, error) {
	resp, err := d.cli.R().Get(url)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
