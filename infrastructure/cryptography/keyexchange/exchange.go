// Package keyexchange derives the two ChaCha20 contexts of a connection from
// four sequential ephemeral X25519 exchanges over the raw stream.
//
// The exchange is unauthenticated: nothing binds the peer's public keys to a
// known server identity, so an active man in the middle can read and alter the
// session. The shape (secret -> key, secret[:12] -> nonce) is kept for
// compatibility with existing servers.
package keyexchange

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"jerry/infrastructure/cryptography/mem"
	"jerry/infrastructure/cryptography/streamcipher"

	"golang.org/x/crypto/curve25519"
)

const PublicKeySize = curve25519.PointSize

var ErrKeyExchange = errors.New("key exchange failed")

// Exchanger runs the client side of the handshake. Rand supplies ephemeral
// private keys and defaults to crypto/rand.
type Exchanger struct {
	Rand io.Reader
}

func New() *Exchanger {
	return &Exchanger{Rand: rand.Reader}
}

// Exchange returns the inbound (master) and outbound (slave) keys. Exchanges
// run in the order master key, master nonce, slave key, slave nonce.
func (e *Exchanger) Exchange(rw io.ReadWriter) (master, slave streamcipher.Key, err error) {
	var secrets [4][32]byte
	defer func() {
		for i := range secrets {
			mem.ZeroBytes(secrets[i][:])
		}
	}()

	for i := range secrets {
		secret, exErr := e.establish(rw)
		if exErr != nil {
			return streamcipher.Key{}, streamcipher.Key{}, fmt.Errorf("%w: exchange %d/4: %w", ErrKeyExchange, i+1, exErr)
		}
		secrets[i] = secret
	}

	master = streamcipher.KeyFromSecrets(secrets[0], secrets[1])
	slave = streamcipher.KeyFromSecrets(secrets[2], secrets[3])
	return master, slave, nil
}

// establish performs one exchange: send our public key, read exactly 32
// bytes of the peer's, compute the shared secret.
func (e *Exchanger) establish(rw io.ReadWriter) ([32]byte, error) {
	var shared [32]byte

	private := make([]byte, curve25519.ScalarSize)
	defer mem.ZeroBytes(private)
	if _, err := io.ReadFull(e.random(), private); err != nil {
		return shared, fmt.Errorf("generate private key: %w", err)
	}

	public, err := curve25519.X25519(private, curve25519.Basepoint)
	if err != nil {
		return shared, fmt.Errorf("derive public key: %w", err)
	}
	if _, err := rw.Write(public); err != nil {
		return shared, fmt.Errorf("write public key: %w", err)
	}
	if f, ok := rw.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return shared, fmt.Errorf("flush public key: %w", err)
		}
	}

	peer := make([]byte, PublicKeySize)
	if _, err := io.ReadFull(rw, peer); err != nil {
		return shared, fmt.Errorf("read peer public key: %w", err)
	}

	secret, err := curve25519.X25519(private, peer)
	if err != nil {
		return shared, fmt.Errorf("compute shared secret: %w", err)
	}
	copy(shared[:], secret)
	mem.ZeroBytes(secret)
	return shared, nil
}

func (e *Exchanger) random() io.Reader {
	if e.Rand == nil {
		return rand.Reader
	}
	return e.Rand
}
