package keyexchange

import (
	"fmt"
	"io"

	"jerry/infrastructure/cryptography/streamcipher"
)

// Secure runs Exchange over rw and wraps its two directions: reads are
// decrypted with the master key, writes encrypted with the slave key.
func (e *Exchanger) Secure(rw io.ReadWriter) (io.Reader, io.Writer, error) {
	master, slave, err := e.Exchange(rw)
	if err != nil {
		return nil, nil, err
	}
	defer master.Zero()
	defer slave.Zero()

	dec, err := streamcipher.NewDecryptor(rw, master)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrKeyExchange, err)
	}
	enc, err := streamcipher.NewEncryptor(rw, slave)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrKeyExchange, err)
	}
	return dec, enc, nil
}
