package blob

// SectorSize is the minimum addressable unit of the card.
const SectorSize = 512

// Padding returns how many zero bytes a blob of n bytes needs to reach
// the next sector boundary. Always in [0, sectorSize).
func Padding(n, sectorSize int) int {
	return (sectorSize - n%sectorSize) % sectorSize
}

// Aligned reports whether n is a whole number of sectors.
func Aligned(n, sectorSize int) bool {
	return n%sectorSize == 0
}

// Pad appends zero bytes to data up to the next sector boundary. Data
// already on a boundary, including an empty blob, comes back unchanged.
// Pad must run exactly once per blob; use Writer when accumulating
// frames so the boundary is handled on Close instead.
func Pad(data []byte, sectorSize int) []byte {
	return append(data, make([]byte, Padding(len(data), sectorSize))...)
}
