// Package disk accesses the card through a local block device node or a
// plain image file.
package disk

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/piyonchu/sdreel/pkg/blob"
	"github.com/piyonchu/sdreel/pkg/device"
)

// Open opens the device node or image file at path for sector I/O. A
// sectorSize of zero means the default 512.
func Open(path string, sectorSize int) (*Disk, error) {
	return open(path, sectorSize, false)
}

// OpenReadOnly opens path for reading back sectors only, so dumping a
// card never needs write permission on the node.
func OpenReadOnly(path string, sectorSize int) (*Disk, error) {
	return open(path, sectorSize, true)
}

func open(path string, sectorSize int, readOnly bool) (*Disk, error) {
	if sectorSize <= 0 {
		sectorSize = blob.SectorSize
	}

	flag := os.O_RDWR
	if readOnly {
		flag = os.O_RDONLY
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("open device failed: %w", err)
	}

	return &Disk{f: f, sectorSize: sectorSize, readOnly: readOnly}, nil
}

type Disk struct {
	f          *os.File
	sectorSize int
	readOnly   bool
}

func (d *Disk) SectorSize() int {
	return d.sectorSize
}

func (d *Disk) ReadSectors(start, count int) ([]byte, error) {
	if err := device.CheckRead(start, count); err != nil {
		return nil, err
	}

	p := make([]byte, count*d.sectorSize)
	if _, err := d.f.ReadAt(p, int64(start)*int64(d.sectorSize)); err != nil {
		return nil, fmt.Errorf("read sectors %d+%d failed: %w", start, count, err)
	}
	return p, nil
}

func (d *Disk) WriteSectors(start int, p []byte) error {
	if d.readOnly {
		return errors.New("device opened read-only")
	}
	if err := device.CheckWrite(d.sectorSize, start, p); err != nil {
		return err
	}

	if _, err := d.f.WriteAt(p, int64(start)*int64(d.sectorSize)); err != nil {
		return fmt.Errorf("write sectors at %d failed: %w", start, err)
	}
	return d.f.Sync()
}

func (d *Disk) Close() error {
	return d.f.Close()
}
