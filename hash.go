package rres

import "hash/crc32"

// Hash computes the default resource id for a file name. This commits to
// CRC32 (IEEE 802.3 / zip / PNG variant) for cross-tool interop with the
// reference packer, which computes ids the same way; see DESIGN.md.
func Hash(name string) uint32 {
	if name == "" {
		return 0
	}
	return crc32.ChecksumIEEE([]byte(name))
}

// crc32Of is the chunk-integrity CRC: same IEEE polynomial, distinct call
// site from Hash so the two concerns (naming vs integrity) stay visibly
// separate even though they share an algorithm.
func crc32Of(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}
