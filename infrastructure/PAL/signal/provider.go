package signal

import "os"

// Provider abstracts the platform's set of shutdown signals.
type Provider interface {
	ShutdownSignals() []os.Signal
}
