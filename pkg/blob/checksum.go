package blob

import (
	"encoding/binary"
	"io"
)

// checksumMod is the largest prime below 2^16, same as adler32 uses.
const checksumMod = 65521

// Checksum sums the big-endian 16-bit words of r modulo 65521. The FPGA
// computes the same running sum while streaming a blob, so matching
// values here and on the serial console means the card contents survived
// the trip. A trailing odd byte is ignored.
func Checksum(r io.Reader) (uint16, error) {
	var total uint32
	var buf [2]byte

	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return uint16(total % checksumMod), nil
			}
			return 0, err
		}
		total += uint32(binary.BigEndian.Uint16(buf[:]))
		total %= checksumMod
	}
}
