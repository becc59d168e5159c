package virtual

import (
	"go.uber.org/zap"

	"github.com/piyonchu/sdreel/pkg/blob"
	"github.com/piyonchu/sdreel/pkg/device"
)

// Mock returns an in-memory card for tests and dry runs. Every operation
// is logged.
func Mock(logger *zap.Logger) *Mocker {
	return &Mocker{l: logger, sectorSize: blob.SectorSize}
}

type Mocker struct {
	l          *zap.Logger
	sectorSize int
	sectors    []byte
}

func (m *Mocker) SectorSize() int {
	return m.sectorSize
}

func (m *Mocker) grow(n int) {
	if n > len(m.sectors) {
		m.sectors = append(m.sectors, make([]byte, n-len(m.sectors))...)
	}
}

func (m *Mocker) ReadSectors(start, count int) ([]byte, error) {
	if err := device.CheckRead(start, count); err != nil {
		return nil, err
	}

	m.l.With(
		zap.Int("start", start),
		zap.Int("count", count),
	).Info("read-sectors")

	off := start * m.sectorSize
	m.grow(off + count*m.sectorSize)
	p := make([]byte, count*m.sectorSize)
	copy(p, m.sectors[off:])
	return p, nil
}

func (m *Mocker) WriteSectors(start int, p []byte) error {
	if err := device.CheckWrite(m.sectorSize, start, p); err != nil {
		return err
	}

	m.l.With(
		zap.Int("start", start),
		zap.Int("sectors", len(p)/m.sectorSize),
		zap.Int("bytes", len(p)),
	).Info("write-sectors")

	off := start * m.sectorSize
	m.grow(off + len(p))
	copy(m.sectors[off:], p)
	return nil
}

func (m *Mocker) Close() error {
	m.l.Info("close")
	return nil
}
