// Package codec implements the rres codec pipeline: pack applies
// compression then encryption on write, unpack applies decryption then
// decompression on read. Each stage is modeled as a small dispatch over a
// stable integer tag; the supported algorithm set is fixed at compile
// time, not runtime-registered.
package codec

import (
	"fmt"

	"github.com/bpfs/rres/zip/deflate"
	"github.com/bpfs/rres/zip/snappy"
)

// CompType mirrors rres.CompType without importing the root package, so
// this package stays a leaf the root package can depend on.
type CompType uint8

const (
	CompNone CompType = iota
	CompDeflate
	CompLZ4
	CompLZMA2
	CompBZip2
	CompBrotli
	CompSnappy
)

// Compress packs data under the given compression tag. The NONE tag
// returns the input unchanged by construction, never a copy-on-write
// alias surprise.
func Compress(tag CompType, data []byte) ([]byte, error) {
	switch tag {
	case CompNone:
		return data, nil
	case CompDeflate:
		return deflate.CompressData(data)
	case CompSnappy:
		return snappy.CompressData(data)
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedCompression, tag)
	}
}

// Decompress reverses Compress.
func Decompress(tag CompType, data []byte) ([]byte, error) {
	switch tag {
	case CompNone:
		return data, nil
	case CompDeflate:
		out, err := deflate.DecompressData(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
		}
		return out, nil
	case CompSnappy:
		out, err := snappy.DecompressData(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedCompression, tag)
	}
}
