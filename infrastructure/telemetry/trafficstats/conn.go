package trafficstats

import (
	"net"
	"sync"

	"github.com/rs/zerolog"
)

// Conn counts the bytes read from and written to the wrapped connection and
// logs the totals once, on the first Close.
type Conn struct {
	net.Conn
	counter Counter
	logger  zerolog.Logger
	once    sync.Once
}

func NewConn(conn net.Conn, logger zerolog.Logger) *Conn {
	return &Conn{Conn: conn, logger: logger}
}

func (c *Conn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	c.counter.AddRX(n)
	return n, err
}

func (c *Conn) Write(p []byte) (int, error) {
	n, err := c.Conn.Write(p)
	c.counter.AddTX(n)
	return n, err
}

func (c *Conn) Stats() Snapshot {
	return c.counter.Snapshot()
}

func (c *Conn) Close() error {
	c.once.Do(func() {
		s := c.counter.Snapshot()
		c.logger.Debug().
			Str("rx", FormatTotal(s.RXBytes)).
			Str("tx", FormatTotal(s.TXBytes)).
			Msg("Connection traffic")
	})
	return c.Conn.Close()
}
