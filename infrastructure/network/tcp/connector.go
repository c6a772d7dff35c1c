package tcp

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

const defaultRetryInterval = 5 * time.Second

// Dialer opens a single connection attempt. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// ErrorClassifier inspects a failed attempt. Returning a non-nil error aborts
// the retry loop with that error; returning nil keeps retrying.
type ErrorClassifier func(err error) error

// AbortOnConnectionAborted stops retrying when the OS reports the connection
// attempt as aborted.
func AbortOnConnectionAborted(err error) error {
	if errors.Is(err, syscall.ECONNABORTED) {
		return err
	}
	return nil
}

// Connector dials a TCP endpoint, optionally retrying at a fixed interval
// until an overall deadline passes.
type Connector struct {
	addr          netip.AddrPort
	timeout       time.Duration
	retryInterval time.Duration
	reconnect     bool
	classify      ErrorClassifier
	dialer        Dialer
	now           func() time.Time
	sleep         func(ctx context.Context, d time.Duration) error
	logger        zerolog.Logger
}

func NewConnector(addr netip.AddrPort, logger zerolog.Logger) *Connector {
	return &Connector{
		addr:          addr,
		retryInterval: defaultRetryInterval,
		dialer:        &net.Dialer{},
		now:           time.Now,
		sleep:         sleepContext,
		logger:        logger,
	}
}

// WithTimeout bounds each attempt and the whole retry loop. Zero means
// unbounded. The retry interval is clamped to the timeout.
func (c *Connector) WithTimeout(timeout time.Duration) *Connector {
	c.timeout = timeout
	if c.timeout > 0 && c.retryInterval > c.timeout {
		c.retryInterval = c.timeout
	}
	return c
}

// WithAutomaticReconnection enables the retry loop. The overall timeout is
// raised to at least one interval so a retry always gets an attempt.
func (c *Connector) WithAutomaticReconnection(interval time.Duration) *Connector {
	c.reconnect = true
	c.retryInterval = interval
	if c.timeout > 0 && c.timeout < c.retryInterval {
		c.timeout = c.retryInterval
	}
	return c
}

func (c *Connector) WithErrorClassifier(classify ErrorClassifier) *Connector {
	c.classify = classify
	return c
}

func (c *Connector) WithDialer(d Dialer) *Connector {
	c.dialer = d
	return c
}

func (c *Connector) Timeout() time.Duration       { return c.timeout }
func (c *Connector) RetryInterval() time.Duration { return c.retryInterval }

func (c *Connector) Connect(ctx context.Context) (net.Conn, error) {
	if !c.reconnect {
		conn, err := c.dial(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("connect failed")
		}
		return conn, err
	}
	return c.reconnectionLoop(ctx)
}

func (c *Connector) reconnectionLoop(ctx context.Context) (net.Conn, error) {
	start := c.now()
	var last error
	for {
		c.logger.Debug().Stringer("server", c.addr).Msg("connecting")
		conn, err := c.dial(ctx)
		if err == nil {
			c.logger.Debug().Stringer("server", c.addr).Msg("connected")
			return conn, nil
		}
		c.logger.Debug().Err(err).Msg("connection error")
		if c.classify != nil {
			if abort := c.classify(err); abort != nil {
				return nil, abort
			}
		}
		last = err

		if sleepErr := c.sleep(ctx, c.retryInterval); sleepErr != nil {
			return nil, sleepErr
		}
		if c.timeout > 0 && c.now().Sub(start) > c.timeout {
			return nil, last
		}
	}
}

func (c *Connector) dial(ctx context.Context) (net.Conn, error) {
	dialCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.dialer.DialContext(dialCtx, "tcp", c.addr.String())
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
