// Package xor implements the trivial stream cipher referenced by the
// original rres tooling's RRES_CIPHER_XOR enumerant. It provides no
// confidentiality against a known-plaintext attack; it exists for parity
// with the legacy cipher-tag set, not as a recommended cipher.
package xor

// Apply XORs data with key, repeating the key as needed. Encryption and
// decryption are the same operation.
func Apply(key, data []byte) []byte {
	if len(key) == 0 {
		out := make([]byte, len(data))
		copy(out, data)
		return out
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}
