package codec

import "errors"

// These mirror the relevant members of the root package's error taxonomy.
// They live here, rather than importing the root package, because the
// root package imports codec — the root package translates these via
// errors.Is at the call site instead.
var (
	ErrUnsupportedCompression = errors.New("codec: unsupported compression")
	ErrUnsupportedCipher      = errors.New("codec: unsupported cipher")
	ErrDecompressionFailed    = errors.New("codec: decompression failed")
	ErrDecryptionFailed       = errors.New("codec: decryption failed")
	ErrNoPassword             = errors.New("codec: password required but not set")
)
