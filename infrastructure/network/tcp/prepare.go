package tcp

import (
	"net"
	"time"

	"jerry/infrastructure/network/tcp/adapters"

	"github.com/rs/zerolog"
)

// Preparer disables Nagle's algorithm and bounds every read by
// readTimeout. A failure to disable Nagle is only logged.
func Preparer(readTimeout time.Duration, logger zerolog.Logger) func(conn net.Conn) (net.Conn, error) {
	return func(conn net.Conn) (net.Conn, error) {
		if tcpConn, ok := conn.(*net.TCPConn); ok {
			if err := tcpConn.SetNoDelay(true); err != nil {
				logger.Warn().Err(err).Msg("Nagle's algorithm is enabled")
			}
		}
		return adapters.NewReadDeadlineConn(conn, readTimeout), nil
	}
}
