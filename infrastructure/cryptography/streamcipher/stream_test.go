package streamcipher

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net"
	"testing"
)

func testKey(seed byte) Key {
	var key, nonce [32]byte
	for i := range key {
		key[i] = seed + byte(i)
		nonce[i] = seed ^ byte(i*7)
	}
	return KeyFromSecrets(key, nonce)
}

func TestKeyFromSecrets_TruncatesNonce(t *testing.T) {
	var key, nonce [32]byte
	for i := range nonce {
		key[i] = byte(i)
		nonce[i] = byte(100 + i)
	}
	k := KeyFromSecrets(key, nonce)
	if k.Key != key {
		t.Fatalf("key mismatch: %x", k.Key)
	}
	if !bytes.Equal(k.Nonce[:], nonce[:12]) {
		t.Fatalf("nonce must be the first 12 bytes of the secret, got %x", k.Nonce)
	}
}

func TestKey_Zero(t *testing.T) {
	k := testKey(9)
	k.Zero()
	if k != (Key{}) {
		t.Fatalf("expected zeroed key, got %+v", k)
	}
}

func TestRoundTrip_SameKey(t *testing.T) {
	var wire bytes.Buffer
	enc, err := NewEncryptor(&wire, testKey(1))
	if err != nil {
		t.Fatal(err)
	}
	plain := [][]byte{[]byte("hello "), []byte("encrypted "), bytes.Repeat([]byte{0x42}, 1000)}
	var want []byte
	for _, p := range plain {
		n, err := enc.Write(p)
		if err != nil || n != len(p) {
			t.Fatalf("write: n=%d err=%v", n, err)
		}
		want = append(want, p...)
	}
	if bytes.Equal(wire.Bytes(), want) {
		t.Fatal("ciphertext equals plaintext")
	}

	dec, err := NewDecryptor(&wire, testKey(1))
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("plaintext mismatch:\n got %x\nwant %x", got, want)
	}
}

func TestRoundTrip_MismatchedKeyOrNonce(t *testing.T) {
	plain := []byte("the quick brown fox jumps over the lazy dog")

	for name, readKey := range map[string]Key{
		"other key": testKey(2),
		"other nonce": func() Key {
			k := testKey(1)
			k.Nonce[0] ^= 0xFF
			return k
		}(),
	} {
		t.Run(name, func(t *testing.T) {
			var wire bytes.Buffer
			enc, _ := NewEncryptor(&wire, testKey(1))
			if _, err := enc.Write(plain); err != nil {
				t.Fatal(err)
			}
			dec, _ := NewDecryptor(&wire, readKey)
			got, _ := io.ReadAll(dec)
			if bytes.Equal(got, plain) {
				t.Fatal("mismatched key material reproduced the plaintext")
			}
		})
	}
}

func TestDecryptor_ChunkingDoesNotMatter(t *testing.T) {
	plain := bytes.Repeat([]byte("0123456789abcdef"), 40)
	var wire bytes.Buffer
	enc, _ := NewEncryptor(&wire, testKey(3))
	if _, err := enc.Write(plain); err != nil {
		t.Fatal(err)
	}

	dec, _ := NewDecryptor(&wire, testKey(3))
	var got []byte
	buf := make([]byte, 7)
	for {
		n, err := dec.Read(buf)
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(got, plain) {
		t.Fatal("chunked decryption mismatch")
	}
}

func TestDecryptor_EOFReturnsZero(t *testing.T) {
	dec, _ := NewDecryptor(bytes.NewReader(nil), testKey(4))
	n, err := dec.Read(make([]byte, 8))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("expected 0, EOF; got %d, %v", n, err)
	}
}

func TestEncryptor_FlushesAfterEveryWrite(t *testing.T) {
	var wire bytes.Buffer
	bw := bufio.NewWriterSize(&wire, 4096)
	enc, _ := NewEncryptor(bw, testKey(5))
	if _, err := enc.Write([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if wire.Len() != 3 {
		t.Fatalf("expected write to be flushed, buffered %d bytes", bw.Buffered())
	}
}

func TestEncryptor_DoesNotMutateCallerBuffer(t *testing.T) {
	enc, _ := NewEncryptor(io.Discard, testKey(6))
	p := []byte("keep me")
	if _, err := enc.Write(p); err != nil {
		t.Fatal(err)
	}
	if string(p) != "keep me" {
		t.Fatalf("caller buffer mutated: %q", p)
	}
}

func TestEncryptor_KeystreamExhausted(t *testing.T) {
	enc, _ := NewEncryptor(io.Discard, testKey(7))
	enc.ks.used = maxStreamBytes - 2
	if _, err := enc.Write([]byte("abc")); !errors.Is(err, ErrKeystreamExhausted) {
		t.Fatalf("expected ErrKeystreamExhausted, got %v", err)
	}
}

func TestOverPipe(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	enc, _ := NewEncryptor(client, testKey(8))
	dec, _ := NewDecryptor(server, testKey(8))

	msg := []byte("over the pipe")
	go func() {
		_, _ = enc.Write(msg)
	}()
	got := make([]byte, len(msg))
	if _, err := io.ReadFull(dec, got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("got %q, want %q", got, msg)
	}
}
