// Package uart drives the card through the FPGA's UART loader, for
// boards where the microSD slot is wired to the FPGA only.
package uart

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/piyonchu/sdreel/pkg/blob"
	"github.com/piyonchu/sdreel/pkg/device"
	"github.com/piyonchu/sdreel/pkg/proto"
)

// Loader command codes.
const (
	Ping         = 101
	ReadSectors  = 178
	WriteSectors = 179
)

const ack = 0x06

func New(serial *proto.Serial, logger *zap.Logger) (*Bridge, error) {
	if err := serial.Open(&proto.Options{
		DTR:         true,
		RTS:         true,
		BaudRate:    115200,
		ReadTimeout: 500 * time.Millisecond,
	}); err != nil {
		return nil, err
	}

	return newBridge(serial, logger)
}

func newBridge(conn io.ReadWriteCloser, logger *zap.Logger) (*Bridge, error) {
	b := &Bridge{
		conn:       conn,
		logger:     logger,
		sectorSize: blob.SectorSize,
	}

	if err := b.ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return b, nil
}

type Bridge struct {
	conn       io.ReadWriteCloser
	logger     *zap.Logger
	sectorSize int
}

func (b *Bridge) SectorSize() int {
	return b.sectorSize
}

func (b *Bridge) ping() error {
	if err := b.sendHeader(Ping, 0, 0); err != nil {
		return err
	}
	return b.readAck()
}

func (b *Bridge) ReadSectors(start, count int) ([]byte, error) {
	if err := device.CheckRead(start, count); err != nil {
		return nil, err
	}

	if err := b.sendHeader(ReadSectors, start, count); err != nil {
		return nil, err
	}

	p := make([]byte, count*b.sectorSize)
	if err := b.readFull(p); err != nil {
		return nil, errors.Wrap(err, "short read from loader")
	}

	b.logger.With(
		zap.Int("start", start),
		zap.Int("count", count),
	).Debug("read-sectors")

	return p, nil
}

func (b *Bridge) WriteSectors(start int, p []byte) error {
	if err := device.CheckWrite(b.sectorSize, start, p); err != nil {
		return err
	}

	if err := b.sendHeader(WriteSectors, start, len(p)/b.sectorSize); err != nil {
		return err
	}

	if err := b.sendBytes(p); err != nil {
		return err
	}

	return b.readAck()
}

func (b *Bridge) Close() error {
	return b.conn.Close()
}

// sendHeader writes the fixed 7-byte command frame: code, start sector
// as big-endian uint32, sector count as big-endian uint16.
func (b *Bridge) sendHeader(code uint8, start, count int) error {
	var bs bytes.Buffer
	bs.WriteByte(code)
	_ = binary.Write(&bs, binary.BigEndian, uint32(start))
	_ = binary.Write(&bs, binary.BigEndian, uint16(count))

	return b.sendBytes(bs.Bytes())
}

func (b *Bridge) sendBytes(p []byte) error {
	var sent int
	var cost time.Duration

	start := time.Now()
	if n, err := b.conn.Write(p); err != nil {
		return err
	} else {
		sent = n
		cost = time.Since(start)
	}

	b.logger.With(
		zap.Int("sent", sent),
		zap.String("cost", cost.String()),
	).Debug("transfer")

	return nil
}

// readFull fills p from the serial port. The port returns (0, nil) once
// its read timeout expires, so a zero-byte read means the loader went
// silent and is reported as an error instead of retrying forever.
func (b *Bridge) readFull(p []byte) error {
	for off := 0; off < len(p); {
		n, err := b.conn.Read(p[off:])
		if err != nil {
			return err
		}
		if n == 0 {
			return errors.Errorf("loader timed out after %d of %d bytes", off, len(p))
		}
		off += n
	}
	return nil
}

func (b *Bridge) readAck() error {
	var r [1]byte
	if err := b.readFull(r[:]); err != nil {
		return errors.Wrap(err, "no ack from loader")
	}
	if r[0] != ack {
		return errors.Errorf("loader nak %#02x", r[0])
	}
	return nil
}
