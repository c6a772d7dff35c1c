// Package exitkey watches the terminal for the exit keys while the client runs
// in logging mode.
package exitkey

import (
	"context"
	"io"
	"time"

	"jerry/application/command"

	"github.com/rs/zerolog"
)

const (
	PollInterval = time.Second
	esc          = 0x1b
)

// Listener turns q or Esc on its input into a Halt and sends a Draw every
// poll interval while nothing is typed.
type Listener struct {
	in       io.Reader
	sender   command.Sender
	interval time.Duration
	logger   zerolog.Logger
}

func NewListener(in io.Reader, sender command.Sender, logger zerolog.Logger) *Listener {
	return &Listener{in: in, sender: sender, interval: PollInterval, logger: logger}
}

type chunk struct {
	data []byte
	err  error
}

// Run blocks until an exit key is read, the input fails, the command
// consumer is gone or ctx ends. A read that never returns keeps its goroutine
// parked on the input; the process is exiting by then.
func (l *Listener) Run(ctx context.Context) {
	chunks := make(chan chunk, 1)
	go l.read(ctx, chunks)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.sender.Send(command.Draw{}); err != nil {
				return
			}
		case c := <-chunks:
			if c.err != nil {
				if c.err != io.EOF {
					l.logger.Warn().Err(c.err).Msg("exit key listener failed")
				}
				_ = l.sender.Send(command.Halt{})
				return
			}
			if isExitKey(c.data) {
				l.logger.Debug().Msg("exit key pressed")
				_ = l.sender.Send(command.Halt{})
				return
			}
		}
	}
}

func (l *Listener) read(ctx context.Context, chunks chan<- chunk) {
	buf := make([]byte, 16)
	for {
		n, err := l.in.Read(buf)
		c := chunk{err: err}
		if n > 0 {
			c.data = append([]byte(nil), buf[:n]...)
			c.err = nil
		}
		select {
		case chunks <- c:
		case <-ctx.Done():
			return
		}
		if c.err != nil {
			return
		}
	}
}

// isExitKey accepts q, Q or a lone Esc. Escape sequences such as arrow keys
// arrive as one chunk starting with Esc and are ignored.
func isExitKey(data []byte) bool {
	if len(data) == 1 && data[0] == esc {
		return true
	}
	for _, b := range data {
		if b == esc {
			return false
		}
		if b == 'q' || b == 'Q' {
			return true
		}
	}
	return false
}
