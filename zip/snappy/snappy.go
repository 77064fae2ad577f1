// Package snappy wraps golang/snappy's block format as the SNAPPY
// compression tag. Same CompressData/DecompressData shape as the sibling
// zip/deflate and zip/gzip packages.
package snappy

import (
	"fmt"

	"github.com/golang/snappy"
)

// CompressData encodes data in the snappy block format.
func CompressData(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

// DecompressData decodes a snappy block produced by CompressData.
func DecompressData(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy 解压失败: %w", err)
	}
	return out, nil
}
