package adapters

import (
	"errors"
	"net"
	"os"
	"testing"
	"time"
)

func TestNewReadDeadlineConn_NonPositiveTimeoutReturnsSame(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()
	if got := NewReadDeadlineConn(client, 0); got != client {
		t.Fatal("expected the original conn for a zero timeout")
	}
}

func TestReadDeadlineConn_SilentPeerTimesOut(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	conn := NewReadDeadlineConn(client, 20*time.Millisecond)
	start := time.Now()
	_, err := conn.Read(make([]byte, 1))
	if !errors.Is(err, os.ErrDeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("read blocked far past the deadline")
	}
}

func TestReadDeadlineConn_DeadlineRefreshedPerRead(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	conn := NewReadDeadlineConn(client, 50*time.Millisecond)
	go func() {
		for i := 0; i < 3; i++ {
			time.Sleep(30 * time.Millisecond)
			if _, err := server.Write([]byte{byte(i)}); err != nil {
				return
			}
		}
	}()

	buf := make([]byte, 1)
	for i := 0; i < 3; i++ {
		if _, err := conn.Read(buf); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if buf[0] != byte(i) {
			t.Fatalf("read %d: got %d", i, buf[0])
		}
	}
}
