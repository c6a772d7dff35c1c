package streamcipher

import (
	"jerry/infrastructure/cryptography/mem"

	"golang.org/x/crypto/chacha20"
)

const (
	KeySize   = chacha20.KeySize
	NonceSize = chacha20.NonceSize
)

// Key is one direction's ChaCha20 (RFC 8439, 96-bit nonce) key material.
type Key struct {
	Key   [KeySize]byte
	Nonce [NonceSize]byte
}

// KeyFromSecrets builds a Key from two 32-byte shared secrets: the first is
// the key, the first 12 bytes of the second are the nonce.
func KeyFromSecrets(key, nonce [32]byte) Key {
	var k Key
	k.Key = key
	copy(k.Nonce[:], nonce[:NonceSize])
	return k
}

// Zero wipes the key material.
func (k *Key) Zero() {
	mem.ZeroAll(k.Key[:], k.Nonce[:])
}
