// Package deflate wraps klauspost/compress's raw DEFLATE stream. It
// deliberately does not use compress/gzip or compress/zlib: the on-disk
// chunk format requires the raw deflate stream with no zlib wrapper, and
// both stdlib wrappers always emit their own header/trailer around the
// deflate stream. The CompressData/DecompressData shape mirrors the
// sibling zip/gzip package.
package deflate

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// CompressData deflates data at the default compression level.
func CompressData(data []byte) ([]byte, error) {
	var out bytes.Buffer
	w, err := flate.NewWriter(&out, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("创建 deflate 写入器失败: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("写入压缩数据失败: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("关闭压缩写入器失败: %w", err)
	}
	return out.Bytes(), nil
}

// DecompressData inflates a raw deflate stream produced by CompressData.
func DecompressData(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("读取解压缩数据失败: %w", err)
	}
	return out, nil
}
