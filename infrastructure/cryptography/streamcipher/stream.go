package streamcipher

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// ErrKeystreamExhausted is returned once a direction has consumed the whole
// 32-bit block counter space of RFC 8439 ChaCha20.
var ErrKeystreamExhausted = errors.New("chacha20 keystream exhausted")

// maxStreamBytes is 2^32 blocks of 64 bytes.
const maxStreamBytes = uint64(1) << 38

type flusher interface {
	Flush() error
}

type keystream struct {
	cipher *chacha20.Cipher
	used   uint64
}

func newKeystream(k Key) (*keystream, error) {
	c, err := chacha20.NewUnauthenticatedCipher(k.Key[:], k.Nonce[:])
	if err != nil {
		return nil, fmt.Errorf("init chacha20: %w", err)
	}
	return &keystream{cipher: c}, nil
}

func (s *keystream) apply(dst, src []byte) error {
	if uint64(len(src)) > maxStreamBytes-s.used {
		return ErrKeystreamExhausted
	}
	s.cipher.XORKeyStream(dst, src)
	s.used += uint64(len(src))
	return nil
}

// Decryptor decrypts everything read from the underlying reader.
type Decryptor struct {
	r  io.Reader
	ks *keystream
}

func NewDecryptor(r io.Reader, k Key) (*Decryptor, error) {
	ks, err := newKeystream(k)
	if err != nil {
		return nil, err
	}
	return &Decryptor{r: r, ks: ks}, nil
}

// Read decrypts in place whatever the underlying reader returned. A zero-byte
// read with io.EOF is passed through unchanged.
func (d *Decryptor) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if n > 0 {
		if ksErr := d.ks.apply(p[:n], p[:n]); ksErr != nil {
			return 0, ksErr
		}
	}
	return n, err
}

// Encryptor encrypts a copy of every buffer written and flushes the
// underlying writer after each write.
type Encryptor struct {
	w   io.Writer
	ks  *keystream
	buf []byte
}

func NewEncryptor(w io.Writer, k Key) (*Encryptor, error) {
	ks, err := newKeystream(k)
	if err != nil {
		return nil, err
	}
	return &Encryptor{w: w, ks: ks}, nil
}

func (e *Encryptor) Write(p []byte) (int, error) {
	if cap(e.buf) < len(p) {
		e.buf = make([]byte, len(p))
	}
	out := e.buf[:len(p)]
	if err := e.ks.apply(out, p); err != nil {
		return 0, err
	}
	n, err := writeFull(e.w, out)
	if err != nil {
		return n, err
	}
	return n, e.Flush()
}

// Flush flushes the underlying writer when it buffers.
func (e *Encryptor) Flush() error {
	if f, ok := e.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// writeFull keeps the keystream aligned with the peer: every encrypted byte
// must reach the wire or the stream is unusable.
func writeFull(w io.Writer, p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := w.Write(p[written:])
		written += n
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
	}
	return written, nil
}
