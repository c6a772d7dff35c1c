package command

import (
	"errors"
	"sync"
)

// ErrConsumerGone is returned by Send once the consumer has detached.
var ErrConsumerGone = errors.New("command consumer is gone")

const defaultCapacity = 1024

// Sender is the producer side of the bus.
type Sender interface {
	Send(cmd Command) error
}

// Bus is a many-producer, single-consumer FIFO. A send blocks while the buffer
// is full and fails with ErrConsumerGone once the consumer has called Detach,
// so producers never hang on a consumer that stopped reading.
type Bus struct {
	ch       chan Command
	gone     chan struct{}
	goneOnce sync.Once
}

func NewBus() *Bus {
	return NewBusWithCapacity(defaultCapacity)
}

func NewBusWithCapacity(capacity int) *Bus {
	return &Bus{
		ch:   make(chan Command, capacity),
		gone: make(chan struct{}),
	}
}

func (b *Bus) Send(cmd Command) error {
	select {
	case <-b.gone:
		return ErrConsumerGone
	default:
	}
	select {
	case b.ch <- cmd:
		return nil
	case <-b.gone:
		return ErrConsumerGone
	}
}

// Receive returns the consumer end. Only one goroutine may read from it.
func (b *Bus) Receive() <-chan Command {
	return b.ch
}

// Detach marks the consumer as gone. Safe to call multiple times.
func (b *Bus) Detach() {
	b.goneOnce.Do(func() {
		close(b.gone)
	})
}

// Done is closed once the consumer has detached.
func (b *Bus) Done() <-chan struct{} {
	return b.gone
}
