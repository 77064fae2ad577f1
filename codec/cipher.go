package codec

import (
	"fmt"

	"github.com/bpfs/rres/crypto/ctr"
	"github.com/bpfs/rres/crypto/gcm"
	"github.com/bpfs/rres/crypto/xchacha"
	"github.com/bpfs/rres/crypto/xor"
)

// CipherType mirrors rres.CipherType; see the comment on CompType in
// compress.go for
// why this package defines its own copy instead of importing the root one.
type CipherType uint8

const (
	CipherNone CipherType = iota
	CipherXOR
	CipherAES
	CipherTDES
	CipherBlowfish
	CipherXTEA
	CipherXChaCha20
	CipherAESGCM
)

// KeyFunc returns the currently active derived key, or ErrNoPassword if
// none is installed. The root package supplies this as a closure over its
// process-wide password store so this package never reaches into global
// state directly.
type KeyFunc func() ([]byte, error)

// Encrypt seals data under the given cipher tag. key is resolved lazily
// via keyFn so that CipherNone never requires a password to be set.
func Encrypt(tag CipherType, keyFn KeyFunc, data []byte) ([]byte, error) {
	if tag == CipherNone {
		return data, nil
	}
	key, err := resolveKey(tag, keyFn)
	if err != nil {
		return nil, err
	}
	switch tag {
	case CipherXOR:
		return xor.Apply(key, data), nil
	case CipherAES:
		out, err := ctr.Encrypt(key, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
		}
		return out, nil
	case CipherAESGCM:
		out, err := gcm.EncryptData(data, key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
		}
		return out, nil
	case CipherXChaCha20:
		return xchacha.Encrypt(key, data)
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedCipher, tag)
	}
}

// Decrypt reverses Encrypt. For the authenticated tags (AESGCM,
// XChaCha20) a MAC failure is reported as ErrDecryptionFailed and the
// caller must not attempt to decompress the result.
func Decrypt(tag CipherType, keyFn KeyFunc, data []byte) ([]byte, error) {
	if tag == CipherNone {
		return data, nil
	}
	key, err := resolveKey(tag, keyFn)
	if err != nil {
		return nil, err
	}
	switch tag {
	case CipherXOR:
		return xor.Apply(key, data), nil
	case CipherAES:
		out, err := ctr.Decrypt(key, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
		}
		return out, nil
	case CipherAESGCM:
		out, err := gcm.DecryptData(data, key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
		}
		return out, nil
	case CipherXChaCha20:
		out, err := xchacha.Decrypt(key, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedCipher, tag)
	}
}

func resolveKey(tag CipherType, keyFn KeyFunc) ([]byte, error) {
	key, err := keyFn()
	if err != nil {
		return nil, fmt.Errorf("%w", ErrNoPassword)
	}
	// AES-256 and XChaCha20-Poly1305 both want a 32-byte key; XOR tolerates
	// any length. Truncate/pad defensively rather than let crypto/aes reject
	// an unexpected key length from a future keyFn implementation.
	if tag == CipherAES || tag == CipherAESGCM || tag == CipherXChaCha20 {
		if len(key) < 32 {
			padded := make([]byte, 32)
			copy(padded, key)
			return padded, nil
		}
		return key[:32], nil
	}
	return key, nil
}
