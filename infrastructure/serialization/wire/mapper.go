package wire

import (
	"jerry/domain/input"
	"jerry/domain/session"
)

// ToMessage maps a decoded server message onto the internal vocabulary.
// Enum values outside the known range are passed through unchanged; the
// handler decides what to do with them.
func ToMessage(m *MasterMessage) input.Message {
	switch a := m.Action.(type) {
	case *MouseMove:
		return input.MouseMove{X: a.X, Y: a.Y}
	case *Keyboard:
		return input.Key{Code: a.Key, State: input.State(a.EventType)}
	case *MouseClick:
		return input.MouseClick{Button: input.Button(a.Button), State: input.State(a.EventType)}
	case *MouseWheel:
		return input.MouseWheel{Direction: input.Direction(a.ScrollDirection), Amount: a.Amount}
	case *Clipboard:
		return input.Clipboard{Content: a.Message, FileList: a.Format == FormatFile}
	case *Request:
		return input.Request{Kind: input.RequestKind(a.Kind)}
	case *Echo:
		return input.Handshake{Result: input.HandshakeResult(a.Result), Message: a.Message}
	case *SessionBegin:
		return input.SessionBegin{RelativeMove: a.MouseMoveRelative}
	case *SessionEnd:
		return input.SessionEnd{}
	default:
		return input.Heartbeat{}
	}
}

// FromMessage is the inverse of ToMessage. It is used by tests and tools that
// play the server side.
func FromMessage(msg input.Message) *MasterMessage {
	var a MasterAction
	switch v := msg.(type) {
	case input.MouseMove:
		a = &MouseMove{X: v.X, Y: v.Y}
	case input.Key:
		a = &Keyboard{Key: v.Code, EventType: int32(v.State)}
	case input.MouseClick:
		a = &MouseClick{Button: int32(v.Button), EventType: int32(v.State)}
	case input.MouseWheel:
		a = &MouseWheel{ScrollDirection: int32(v.Direction), Amount: v.Amount}
	case input.Clipboard:
		a = &Clipboard{Format: format(v.FileList), Message: v.Content}
	case input.Request:
		a = &Request{Kind: int32(v.Kind)}
	case input.Handshake:
		a = &Echo{Result: int32(v.Result), Message: v.Message}
	case input.SessionBegin:
		a = &SessionBegin{MouseMoveRelative: v.RelativeMove}
	case input.SessionEnd:
		a = &SessionEnd{}
	case input.Heartbeat:
		a = &Heartbeat{}
	}
	return &MasterMessage{Action: a}
}

// FromResponse maps a handler response onto the client message.
func FromResponse(r input.Response) *SlaveMessage {
	switch v := r.(type) {
	case input.CursorResponse:
		return &SlaveMessage{Response: &Position{X: v.X, Y: v.Y}}
	case input.InitInfoResponse:
		return &SlaveMessage{Response: &ClientInfo{
			Width:    v.Info.Width,
			Height:   v.Info.Height,
			Cursor:   Position{X: v.Info.CursorX, Y: v.Info.CursorY},
			Password: v.Info.Password,
			GUID:     v.Info.GUID,
			Name:     v.Info.Name,
			System:   int32(v.Info.System),
		}}
	case input.ClipboardResponse:
		return &SlaveMessage{Response: &ClipboardSession{Clipboard{Format: format(v.FileList), Message: v.Content}}}
	case input.NoResponse:
		return &SlaveMessage{Response: &Failure{Reason: v.Reason}}
	}
	return &SlaveMessage{}
}

// ToResponse is the inverse of FromResponse. A message without a response
// maps to nil.
func ToResponse(m *SlaveMessage) input.Response {
	switch v := m.Response.(type) {
	case *Position:
		return input.CursorResponse{X: v.X, Y: v.Y}
	case *ClientInfo:
		return input.InitInfoResponse{Info: session.ClientInfo{
			Name:     v.Name,
			GUID:     v.GUID,
			Password: v.Password,
			Width:    v.Width,
			Height:   v.Height,
			CursorX:  v.Cursor.X,
			CursorY:  v.Cursor.Y,
			System:   session.OS(v.System),
		}}
	case *ClipboardSession:
		return input.ClipboardResponse{Content: v.Message, FileList: v.Format == FormatFile}
	case *Failure:
		return input.NoResponse{Reason: v.Reason}
	}
	return nil
}

func format(fileList bool) int32 {
	if fileList {
		return FormatFile
	}
	return FormatText
}
