// Package xchacha implements XChaCha20-Poly1305 authenticated encryption.
// It follows the same nonce-prepend / MAC-append shape as the sibling
// crypto/gcm package (gcm.Seal(nonce, nonce, data, nil)), substituting the
// wider 24-byte XChaCha20 nonce.
package xchacha

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Encrypt seals data under key (must be chacha20poly1305.KeySize bytes),
// returning nonce || ciphertext || tag.
func Encrypt(key, data []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("创建 XChaCha20-Poly1305 失败: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("生成 nonce 失败: %w", err)
	}

	return aead.Seal(nonce, nonce, data, nil), nil
}

// Decrypt opens a buffer produced by Encrypt. A MAC failure is a hard
// authentication error: callers must reject the chunk outright, without
// attempting to decompress whatever bytes came out.
func Decrypt(key, sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("创建 XChaCha20-Poly1305 失败: %w", err)
	}

	if len(sealed) < aead.NonceSize() {
		return nil, fmt.Errorf("非法的密文格式")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("解密失败: %w", err)
	}
	return plaintext, nil
}
