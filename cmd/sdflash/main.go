package main

import (
	"bytes"
	"log"
	"os"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/piyonchu/sdreel/pkg/blob"
	"github.com/piyonchu/sdreel/pkg/device"
	"github.com/piyonchu/sdreel/pkg/device/disk"
	"github.com/piyonchu/sdreel/pkg/device/remote"
	"github.com/piyonchu/sdreel/pkg/device/uart"
	"github.com/piyonchu/sdreel/pkg/proto"
)

var dev = flag.String("dev", "", "device: block node or image path, host:port for remote, serial name with --uart")
var useUart = flag.Bool("uart", false, "talk to the card through the FPGA's UART loader")
var bin = flag.String("bin", "", "blob to flash")
var start = flag.Int("start", 0, "start sector")
var readCount = flag.Int("read", 0, "sectors to read back instead of flashing")
var out = flag.String("out", "", "output path for read data, stdout if empty")
var verify = flag.Bool("verify", true, "read back and checksum after flashing")
var sector = flag.Int("sector", 512, "sector size")

func main() {
	flag.Parse()

	logger, _ := zap.NewDevelopment()

	if *dev == "" {
		log.Fatal("no device given")
	}

	var d device.Device
	var devErr error

	switch {
	case *useUart:
		d, devErr = uart.New(proto.NewSerial(*dev), logger)
	case strings.Contains(*dev, ":"):
		d, devErr = remote.New(*dev)
	default:
		open := lo.Ternary(*readCount > 0, disk.OpenReadOnly, disk.Open)
		d, devErr = open(*dev, *sector)
	}
	if devErr != nil {
		log.Fatal(devErr)
	}
	defer func() {
		_ = d.Close()
	}()

	if *readCount > 0 {
		readBack(logger, d)
		return
	}

	if *bin == "" {
		log.Fatal("no blob given")
	}
	flash(logger, d)
}

func flash(logger *zap.Logger, d device.Device) {
	data, err := os.ReadFile(*bin)
	if err != nil {
		log.Fatal(err)
	}

	padded := blob.Pad(data, d.SectorSize())
	sectors := len(padded) / d.SectorSize()

	sum, err := blob.Checksum(bytes.NewReader(padded))
	if err != nil {
		log.Fatal(err)
	}

	if err := d.WriteSectors(*start, padded); err != nil {
		log.Fatal(err)
	}

	logger.With(
		zap.String("size", bytesize.New(float64(len(padded))).String()),
		zap.Int("from", *start),
		zap.Int("to", *start+sectors-1),
		zap.Uint16("checksum", sum),
	).Info("flashed")

	if !*verify {
		return
	}

	got, err := d.ReadSectors(*start, sectors)
	if err != nil {
		log.Fatal(err)
	}

	gotSum, err := blob.Checksum(bytes.NewReader(got))
	if err != nil {
		log.Fatal(err)
	}

	if gotSum != sum {
		logger.With(zap.Uint16("want", sum), zap.Uint16("got", gotSum)).Error("verify failed")
		os.Exit(1)
	}
	logger.Info("verify ok")
}

func readBack(logger *zap.Logger, d device.Device) {
	data, err := d.ReadSectors(*start, *readCount)
	if err != nil {
		log.Fatal(err)
	}

	sum, err := blob.Checksum(bytes.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}

	w := lo.Ternary[*os.File](*out == "", os.Stdout, nil)
	if w == nil {
		if w, err = os.Create(*out); err != nil {
			log.Fatal(err)
		}
		defer func() {
			_ = w.Close()
		}()
	}

	if _, err := w.Write(data); err != nil {
		log.Fatal(err)
	}

	logger.With(
		zap.String("size", bytesize.New(float64(len(data))).String()),
		zap.Int("from", *start),
		zap.Int("to", *start+*readCount-1),
		zap.Uint16("checksum", sum),
	).Info("read sectors")
}
