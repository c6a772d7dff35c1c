package orchestrator

import (
	"context"
	"io"
	"net"
	"time"

	"jerry/application/command"
	"jerry/application/handler"
	"jerry/domain/connection"

	"github.com/rs/zerolog"
)

const (
	// HeartbeatTimeout bounds every read; a silent server fails the read.
	HeartbeatTimeout = 2500 * time.Millisecond
	cycleDelay       = time.Second
)

// Connector opens the TCP connection for one cycle.
type Connector interface {
	Connect(ctx context.Context) (net.Conn, error)
}

// SecureChannel runs the key exchange over rw and returns the decrypting
// reader and encrypting writer for the rest of the connection.
type SecureChannel interface {
	Secure(rw io.ReadWriter) (io.Reader, io.Writer, error)
}

// Framing reads messages from in, hands them to consumer and writes the
// responses to out until the consumer finishes or an I/O error occurs.
type Framing interface {
	Serve(in io.Reader, out io.Writer, consumer handler.MessageConsumer) error
}

// ConsumerFactory builds a fresh message consumer for each connection.
type ConsumerFactory func() handler.MessageConsumer

// ConnPreparer adjusts a freshly dialed connection before use.
type ConnPreparer func(conn net.Conn) (net.Conn, error)

type Worker struct {
	sender    command.Sender
	connector Connector
	secure    SecureChannel
	framing   Framing
	consumers ConsumerFactory
	prepare   ConnPreparer
	logger    zerolog.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

func NewWorker(
	sender command.Sender,
	connector Connector,
	secure SecureChannel,
	framing Framing,
	consumers ConsumerFactory,
	prepare ConnPreparer,
	logger zerolog.Logger,
) *Worker {
	return &Worker{
		sender:    sender,
		connector: connector,
		secure:    secure,
		framing:   framing,
		consumers: consumers,
		prepare:   prepare,
		logger:    logger,
		sleep:     sleepContext,
	}
}

// Run drives connection cycles until the command consumer goes away, the key
// exchange fails or ctx is cancelled. It always finishes by sending Halt.
func (w *Worker) Run(ctx context.Context) {
	for cycle := 0; ctx.Err() == nil; cycle++ {
		if !w.publish(connection.NewState(connection.Establishing)) {
			break
		}
		if cycle != 0 {
			if err := w.sleep(ctx, cycleDelay); err != nil {
				break
			}
		}
		if !w.runCycle(ctx) {
			break
		}
	}
	_ = w.sender.Send(command.Halt{})
}

// runCycle performs one connect, key exchange and framing loop. It reports
// whether another cycle should follow.
func (w *Worker) runCycle(ctx context.Context) bool {
	conn, err := w.connector.Connect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		return w.publish(connection.NewStateWithReason(connection.ConnectionError, err.Error()))
	}

	stream := conn
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer func() {
		stop()
		_ = stream.Close()
	}()

	if w.prepare != nil {
		prepared, prepErr := w.prepare(conn)
		if prepErr != nil {
			_ = w.publish(connection.NewStateWithReason(connection.ConnectionError, prepErr.Error()))
			return false
		}
		stream = prepared
	}
	if !w.publish(connection.NewState(connection.Connected)) {
		return false
	}

	in, out, err := w.secure.Secure(stream)
	if err != nil {
		w.logger.Error().Err(err).Msg("key exchange failed")
		_ = w.publish(connection.NewStateWithReason(connection.KeyExchangeFailed, err.Error()))
		return false
	}
	if !w.publish(connection.NewState(connection.ConnectedSecured)) {
		return false
	}

	consumer := w.consumers()
	err = w.framing.Serve(in, out, consumer)
	if r, ok := consumer.(handler.Releaser); ok {
		r.ReleaseHeld()
	}
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		w.logger.Warn().Err(err).Msg("connection lost")
		if !w.publish(connection.NewStateWithReason(connection.ReadError, err.Error())) {
			return false
		}
	}
	w.logger.Info().Msg("Disconnected")
	return true
}

func (w *Worker) publish(state connection.State) bool {
	if err := w.sender.Send(command.ConnectionResult{State: state}); err != nil {
		w.logger.Debug().Err(err).Stringer("state", state).Msg("failed to publish connection state")
		return false
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
