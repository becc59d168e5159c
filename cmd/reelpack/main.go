package main

import (
	"log"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/piyonchu/sdreel/pkg/reel"
)

var dir = flag.String("dir", ".", "frame directory")
var out = flag.String("out", "all.bin", "output blob path")
var width = flag.Int("width", 0, "display width, 0 keeps source size")
var height = flag.Int("height", 0, "display height, 0 keeps source size")
var count = flag.Int("count", -1, "frame count, -1 scans the directory")
var sector = flag.Int("sector", 512, "sector size")
var dedup = flag.Bool("dedup", false, "remove duplicate source frames first")
var fetch = flag.StringSlice("fetch", nil, "frame URLs to download first")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()

	fs, err := reel.NewFs(*dir)
	if err != nil {
		log.Fatal(err)
	}

	if len(*fetch) > 0 {
		if err := reel.NewDownloader(fs, logger).Fetch(*fetch); err != nil {
			log.Fatal(err)
		}
	}

	if *dedup {
		removed, err := reel.Dedup(fs, logger)
		if err != nil {
			log.Fatal(err)
		}
		logger.With(zap.Int("removed", len(removed))).Info("dedup done")
	}

	opts := []reel.Option{reel.WithSectorSize(*sector)}
	if *width > 0 && *height > 0 {
		opts = append(opts, reel.WithGeometry(*width, *height))
	}
	if *count >= 0 {
		opts = append(opts, reel.WithCount(*count))
	}

	r := reel.New(fs, logger, opts...)

	path, err := filepath.Abs(*out)
	if err != nil {
		log.Fatal(err)
	}

	n, err := r.PackFile(afero.NewOsFs(), path)
	if err != nil {
		log.Fatal(err)
	}

	logger.With(
		zap.String("blob", path),
		zap.String("size", bytesize.New(float64(n)).String()),
		zap.Int64("sectors", n/int64(*sector)),
	).Info("reel packed")
}
