// Package device abstracts sector-level access to the card holding the
// frame blobs, whether it sits in a local reader, behind the FPGA's UART
// loader, or on another machine.
package device

import "github.com/pkg/errors"

// Device reads and writes whole sectors. Writes must be sector-aligned;
// pad blobs with pkg/blob before flashing. Implementations are not safe
// for concurrent use.
type Device interface {
	SectorSize() int
	ReadSectors(start, count int) ([]byte, error)
	WriteSectors(start int, p []byte) error
	Close() error
}

// CheckWrite validates a sector write before any I/O happens.
func CheckWrite(sectorSize, start int, p []byte) error {
	if start < 0 {
		return errors.Errorf("negative start sector %d", start)
	}
	if len(p)%sectorSize != 0 {
		return errors.Errorf("write of %d bytes is not sector aligned", len(p))
	}
	return nil
}

// CheckRead validates a sector read range.
func CheckRead(start, count int) error {
	if start < 0 {
		return errors.Errorf("negative start sector %d", start)
	}
	if count <= 0 {
		return errors.Errorf("invalid sector count %d", count)
	}
	return nil
}
