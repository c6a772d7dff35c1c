package wire

import "google.golang.org/protobuf/encoding/protowire"

// MasterMessage field numbers.
const (
	masterMousePosition protowire.Number = 1
	masterKeyboard      protowire.Number = 2
	masterMouseClick    protowire.Number = 3
	masterMouseWheel    protowire.Number = 4
	masterClipboard     protowire.Number = 5
	masterRequest       protowire.Number = 6
	masterHandshake     protowire.Number = 7
	masterStartSession  protowire.Number = 8
	masterEndSession    protowire.Number = 9
	masterHeartbeat     protowire.Number = 10
	masterRndB          protowire.Number = 14
	masterRndE          protowire.Number = 15
)

// Enum values as they appear on the wire.
const (
	StatePressed  int32 = 0
	StateReleased int32 = 1

	FormatText int32 = 0
	FormatFile int32 = 1

	RequestInitInfo      int32 = 0
	RequestClipboard     int32 = 1
	RequestMousePosition int32 = 2

	HandshakeSuccess   int32 = 0
	HandshakeRejection int32 = 1
)

// MasterAction is the oneof carried by a MasterMessage. A message without an
// action is a heartbeat.
type MasterAction interface {
	number() protowire.Number
	marshal() []byte
}

// MasterMessage is the server-to-client message.
type MasterMessage struct {
	Action MasterAction
	// RndB and RndE are random padding the server adds to vary frame sizes.
	RndB string
	RndE string
}

type MouseMove struct {
	X int32
	Y int32
}

type Keyboard struct {
	Key       uint32
	EventType int32
}

type MouseClick struct {
	Button    int32
	EventType int32
}

type MouseWheel struct {
	ScrollDirection int32
	Amount          int32
}

type Clipboard struct {
	Format  int32
	Message string
}

// Request is a scalar oneof member.
type Request struct {
	Kind int32
}

type Echo struct {
	Result  int32
	Message string
}

type SessionBegin struct {
	MouseMoveRelative bool
}

type SessionEnd struct{}

type Heartbeat struct {
	OneWay bool
}

func (*MouseMove) number() protowire.Number    { return masterMousePosition }
func (*Keyboard) number() protowire.Number     { return masterKeyboard }
func (*MouseClick) number() protowire.Number   { return masterMouseClick }
func (*MouseWheel) number() protowire.Number   { return masterMouseWheel }
func (*Clipboard) number() protowire.Number    { return masterClipboard }
func (*Request) number() protowire.Number      { return masterRequest }
func (*Echo) number() protowire.Number         { return masterHandshake }
func (*SessionBegin) number() protowire.Number { return masterStartSession }
func (*SessionEnd) number() protowire.Number   { return masterEndSession }
func (*Heartbeat) number() protowire.Number    { return masterHeartbeat }

func (m *MouseMove) marshal() []byte {
	b := appendInt32Field(nil, 1, m.X)
	return appendInt32Field(b, 2, m.Y)
}

func (m *Keyboard) marshal() []byte {
	b := appendVarintField(nil, 1, uint64(m.Key))
	return appendInt32Field(b, 2, m.EventType)
}

func (m *MouseClick) marshal() []byte {
	b := appendInt32Field(nil, 1, m.Button)
	return appendInt32Field(b, 2, m.EventType)
}

func (m *MouseWheel) marshal() []byte {
	b := appendInt32Field(nil, 1, m.ScrollDirection)
	return appendInt32Field(b, 2, m.Amount)
}

func (m *Clipboard) marshal() []byte {
	b := appendInt32Field(nil, 1, m.Format)
	return appendStringField(b, 2, m.Message)
}

// marshal is unused for the scalar member; MarshalBinary special-cases it.
func (m *Request) marshal() []byte { return nil }

func (m *Echo) marshal() []byte {
	b := appendInt32Field(nil, 1, m.Result)
	return appendStringField(b, 2, m.Message)
}

func (m *SessionBegin) marshal() []byte { return appendBoolField(nil, 1, m.MouseMoveRelative) }
func (m *SessionEnd) marshal() []byte   { return nil }
func (m *Heartbeat) marshal() []byte    { return appendBoolField(nil, 1, m.OneWay) }

func (m *MasterMessage) MarshalBinary() ([]byte, error) {
	var b []byte
	switch a := m.Action.(type) {
	case nil:
	case *Request:
		b = appendOneofVarint(b, masterRequest, uint64(int64(a.Kind)))
	default:
		b = appendMessageField(b, a.number(), a.marshal())
	}
	b = appendStringField(b, masterRndB, m.RndB)
	b = appendStringField(b, masterRndE, m.RndE)
	return b, nil
}

func (m *MasterMessage) UnmarshalBinary(data []byte) error {
	*m = MasterMessage{}
	return rangeFields(data, func(f field) error {
		if f.typ == protowire.VarintType {
			if f.num == masterRequest {
				m.Action = &Request{Kind: f.int32()}
			}
			return nil
		}
		if f.typ != protowire.BytesType {
			return nil
		}
		var err error
		switch f.num {
		case masterMousePosition:
			v := &MouseMove{}
			err = rangeFields(f.bytes, func(g field) error {
				switch g.num {
				case 1:
					v.X = g.int32()
				case 2:
					v.Y = g.int32()
				}
				return nil
			})
			m.Action = v
		case masterKeyboard:
			v := &Keyboard{}
			err = rangeFields(f.bytes, func(g field) error {
				switch g.num {
				case 1:
					v.Key = g.uint32()
				case 2:
					v.EventType = g.int32()
				}
				return nil
			})
			m.Action = v
		case masterMouseClick:
			v := &MouseClick{}
			err = rangeFields(f.bytes, func(g field) error {
				switch g.num {
				case 1:
					v.Button = g.int32()
				case 2:
					v.EventType = g.int32()
				}
				return nil
			})
			m.Action = v
		case masterMouseWheel:
			v := &MouseWheel{}
			err = rangeFields(f.bytes, func(g field) error {
				switch g.num {
				case 1:
					v.ScrollDirection = g.int32()
				case 2:
					v.Amount = g.int32()
				}
				return nil
			})
			m.Action = v
		case masterClipboard:
			v, cErr := unmarshalClipboard(f.bytes)
			err = cErr
			m.Action = v
		case masterHandshake:
			v := &Echo{}
			err = rangeFields(f.bytes, func(g field) error {
				switch g.num {
				case 1:
					v.Result = g.int32()
				case 2:
					v.Message = g.str()
				}
				return nil
			})
			m.Action = v
		case masterStartSession:
			v := &SessionBegin{}
			err = rangeFields(f.bytes, func(g field) error {
				if g.num == 1 {
					v.MouseMoveRelative = g.bool()
				}
				return nil
			})
			m.Action = v
		case masterEndSession:
			m.Action = &SessionEnd{}
		case masterHeartbeat:
			v := &Heartbeat{}
			err = rangeFields(f.bytes, func(g field) error {
				if g.num == 1 {
					v.OneWay = g.bool()
				}
				return nil
			})
			m.Action = v
		case masterRndB:
			m.RndB = f.str()
		case masterRndE:
			m.RndE = f.str()
		}
		return err
	})
}

func unmarshalClipboard(b []byte) (*Clipboard, error) {
	v := &Clipboard{}
	err := rangeFields(b, func(g field) error {
		switch g.num {
		case 1:
			v.Format = g.int32()
		case 2:
			v.Message = g.str()
		}
		return nil
	})
	return v, err
}
