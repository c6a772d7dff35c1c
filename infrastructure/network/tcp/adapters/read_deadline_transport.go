package adapters

import (
	"net"
	"time"
)

// ReadDeadlineConn refreshes a read deadline before every Read, so a peer that
// stays silent for longer than timeout fails the blocked read. The server's
// heartbeats keep an idle session alive.
type ReadDeadlineConn struct {
	net.Conn
	timeout time.Duration
}

// NewReadDeadlineConn wraps conn. A non-positive timeout returns conn as is.
func NewReadDeadlineConn(conn net.Conn, timeout time.Duration) net.Conn {
	if timeout <= 0 {
		return conn
	}
	return &ReadDeadlineConn{Conn: conn, timeout: timeout}
}

func (c *ReadDeadlineConn) Read(p []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(p)
}
