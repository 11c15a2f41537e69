package imaging

import "hash/crc32"

// checksum returns the CRC-32 (IEEE) of data. It identifies content for
// equality checks only; distinct inputs can collide.
func checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
