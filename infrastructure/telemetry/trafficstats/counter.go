package trafficstats

import "sync/atomic"

type Snapshot struct {
	RXBytes uint64
	TXBytes uint64
}

// Counter accumulates the bytes moved over one connection.
type Counter struct {
	rx atomic.Uint64
	tx atomic.Uint64
}

func (c *Counter) AddRX(n int) {
	if n > 0 {
		c.rx.Add(uint64(n))
	}
}

func (c *Counter) AddTX(n int) {
	if n > 0 {
		c.tx.Add(uint64(n))
	}
}

func (c *Counter) Snapshot() Snapshot {
	return Snapshot{RXBytes: c.rx.Load(), TXBytes: c.tx.Load()}
}
