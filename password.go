package rres

import (
	"crypto/sha256"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2Iterations, pbkdf2KeyLen and pbkdf2Salt are fixed for the lifetime
// of the process.
// A per-file random salt would let two processes holding the same
// passphrase disagree on keys, which the single process-wide store is not
// designed to coordinate; a fixed salt keeps key derivation deterministic
// for a given passphrase within this build.
const (
	pbkdf2Iterations = 100000
	pbkdf2KeyLen     = 32
)

var pbkdf2Salt = []byte("rres-v1-pbkdf2-salt")

// passwordStore is the process-wide symmetric-cipher passphrase. It is
// read-mostly: set once at startup, read by every cipher operation, and
// guarded with a sync.RWMutex around a mutable struct field.
type passwordStore struct {
	mu  sync.RWMutex
	set bool
	key [pbkdf2KeyLen]byte
}

var globalPassword passwordStore

// SetPassword derives and installs the active passphrase. It replaces any
// previously installed key material wholesale; no old key lingers once
// this returns.
func SetPassword(passphrase []byte) {
	key := pbkdf2.Key(passphrase, pbkdf2Salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	globalPassword.mu.Lock()
	defer globalPassword.mu.Unlock()
	copy(globalPassword.key[:], key)
	globalPassword.set = true
}

// ClearPassword zeroises the store, returning it to its uninitialised
// state.
func ClearPassword() {
	globalPassword.mu.Lock()
	defer globalPassword.mu.Unlock()
	for i := range globalPassword.key {
		globalPassword.key[i] = 0
	}
	globalPassword.set = false
}

// currentKey returns the active derived key, or ErrNoPassword if no
// passphrase is installed (never set, or cleared by ClearPassword).
func currentKey() ([]byte, error) {
	globalPassword.mu.RLock()
	defer globalPassword.mu.RUnlock()
	if !globalPassword.set {
		return nil, ErrNoPassword
	}
	key := make([]byte, pbkdf2KeyLen)
	copy(key, globalPassword.key[:])
	return key, nil
}

// PasswordSet reports whether a passphrase is currently installed.
func PasswordSet() bool {
	globalPassword.mu.RLock()
	defer globalPassword.mu.RUnlock()
	return globalPassword.set
}
