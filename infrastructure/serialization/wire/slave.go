package wire

import "google.golang.org/protobuf/encoding/protowire"

// SlaveMessage field numbers.
const (
	slaveCursor           protowire.Number = 1
	slaveInitInfo         protowire.Number = 2
	slaveClipboardSession protowire.Number = 3
	slaveNoResponse       protowire.Number = 4
)

// SlaveResponse is the oneof carried by a SlaveMessage.
type SlaveResponse interface {
	slaveNumber() protowire.Number
	marshal() []byte
}

// SlaveMessage is the client-to-server message.
type SlaveMessage struct {
	Response SlaveResponse
}

type Position struct {
	X int32
	Y int32
}

type ClientInfo struct {
	Width    int32
	Height   int32
	Cursor   Position
	Password string
	GUID     string
	Name     string
	System   int32
}

type Failure struct {
	Reason string
}

// ClipboardSession wraps Clipboard so it can sit in the slave oneof.
type ClipboardSession struct {
	Clipboard
}

func (*Position) slaveNumber() protowire.Number         { return slaveCursor }
func (*ClientInfo) slaveNumber() protowire.Number       { return slaveInitInfo }
func (*ClipboardSession) slaveNumber() protowire.Number { return slaveClipboardSession }
func (*Failure) slaveNumber() protowire.Number          { return slaveNoResponse }

func (p *Position) marshal() []byte {
	b := appendInt32Field(nil, 1, p.X)
	return appendInt32Field(b, 2, p.Y)
}

func (c *ClientInfo) marshal() []byte {
	b := appendInt32Field(nil, 1, c.Width)
	b = appendInt32Field(b, 2, c.Height)
	b = appendMessageField(b, 3, c.Cursor.marshal())
	b = appendStringField(b, 4, c.Password)
	b = appendMessageField(b, 5, appendStringField(nil, 1, c.GUID))
	b = appendStringField(b, 6, c.Name)
	return appendInt32Field(b, 7, c.System)
}

func (f *Failure) marshal() []byte { return appendStringField(nil, 1, f.Reason) }

func (m *SlaveMessage) MarshalBinary() ([]byte, error) {
	if m.Response == nil {
		return nil, nil
	}
	return appendMessageField(nil, m.Response.slaveNumber(), m.Response.marshal()), nil
}

func (m *SlaveMessage) UnmarshalBinary(data []byte) error {
	*m = SlaveMessage{}
	return rangeFields(data, func(f field) error {
		if f.typ != protowire.BytesType {
			return nil
		}
		switch f.num {
		case slaveCursor:
			p, err := unmarshalPosition(f.bytes)
			m.Response = &p
			return err
		case slaveInitInfo:
			v := &ClientInfo{}
			m.Response = v
			return rangeFields(f.bytes, func(g field) error {
				switch g.num {
				case 1:
					v.Width = g.int32()
				case 2:
					v.Height = g.int32()
				case 3:
					p, err := unmarshalPosition(g.bytes)
					v.Cursor = p
					return err
				case 4:
					v.Password = g.str()
				case 5:
					return rangeFields(g.bytes, func(u field) error {
						if u.num == 1 {
							v.GUID = u.str()
						}
						return nil
					})
				case 6:
					v.Name = g.str()
				case 7:
					v.System = g.int32()
				}
				return nil
			})
		case slaveClipboardSession:
			c, err := unmarshalClipboard(f.bytes)
			m.Response = &ClipboardSession{Clipboard: *c}
			return err
		case slaveNoResponse:
			v := &Failure{}
			m.Response = v
			return rangeFields(f.bytes, func(g field) error {
				if g.num == 1 {
					v.Reason = g.str()
				}
				return nil
			})
		}
		return nil
	})
}

func unmarshalPosition(b []byte) (Position, error) {
	var p Position
	err := rangeFields(b, func(g field) error {
		switch g.num {
		case 1:
			p.X = g.int32()
		case 2:
			p.Y = g.int32()
		}
		return nil
	})
	return p, err
}
