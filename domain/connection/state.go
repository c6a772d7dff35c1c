package connection

import "fmt"

type Kind int

const (
	None Kind = iota
	Establishing
	ConnectionError
	Connected
	ConnectedSecured
	KeyExchangeFailed
	HandshakeFailed
	HandshakeSuccess
	ReadError
)

// State is one step of the connection lifecycle. Reason is only meaningful for
// the kinds that carry one.
type State struct {
	Kind   Kind
	Reason string
}

func NewState(kind Kind) State { return State{Kind: kind} }

func NewStateWithReason(kind Kind, reason string) State {
	return State{Kind: kind, Reason: reason}
}

func (s State) String() string {
	switch s.Kind {
	case None:
		return "None"
	case Establishing:
		return "Establishing"
	case Connected:
		return "Connected"
	case ConnectedSecured:
		return "Encrypted communication established"
	case ConnectionError:
		return "Connection error"
	case ReadError:
		return "Read error"
	case HandshakeFailed:
		return fmt.Sprintf("Handshake failed (%s)", s.Reason)
	case HandshakeSuccess:
		return fmt.Sprintf("Handshake succeeded (%s)", s.Reason)
	case KeyExchangeFailed:
		return "Key exchange failed"
	default:
		return fmt.Sprintf("State(%d)", int(s.Kind))
	}
}

// Fatal reports whether the state ends the client run.
func (s State) Fatal() bool {
	return s.Kind == KeyExchangeFailed || s.Kind == HandshakeFailed
}
