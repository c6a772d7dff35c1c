package input

// Message is the internal vocabulary shared by the wire mapper, the session
// handler and the presentation layer. The concrete types below are the only
// implementations.
type Message interface {
	isMessage()
}

// MouseMove is absolute or relative depending on the mode announced by the
// SessionBegin that opened the current session.
type MouseMove struct {
	X, Y int32
}

type Key struct {
	Code  uint32
	State State
}

type MouseClick struct {
	Button Button
	State  State
}

type MouseWheel struct {
	Direction Direction
	Amount    int32
}

type SessionBegin struct {
	RelativeMove bool
}

type SessionEnd struct{}

type Clipboard struct {
	Content  string
	FileList bool
}

type Request struct {
	Kind RequestKind
}

// Handshake is the server's echo of the init-info exchange.
type Handshake struct {
	Result  HandshakeResult
	Message string
}

type Heartbeat struct{}

func (MouseMove) isMessage()    {}
func (Key) isMessage()          {}
func (MouseClick) isMessage()   {}
func (MouseWheel) isMessage()   {}
func (SessionBegin) isMessage() {}
func (SessionEnd) isMessage()   {}
func (Clipboard) isMessage()    {}
func (Request) isMessage()      {}
func (Handshake) isMessage()    {}
func (Heartbeat) isMessage()    {}
