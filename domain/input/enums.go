package input

import "fmt"

// State is the pressed/released state of a key or mouse button.
type State int32

const (
	Pressed State = iota
	Released
)

func (s State) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Button identifies a mouse button. Values double as indices into the
// handler's button table.
type Button int32

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonX1
	ButtonX2
)

// ButtonCount is the number of mouse buttons the client tracks.
const ButtonCount = 5

func (b Button) Valid() bool {
	return b >= ButtonLeft && b < ButtonCount
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	case ButtonX1:
		return "XButton1"
	case ButtonX2:
		return "XButton2"
	default:
		return fmt.Sprintf("Button(%d)", int32(b))
	}
}

// Direction is a mouse wheel scroll direction.
type Direction int32

const (
	ScrollUp Direction = iota
	ScrollDown
	ScrollLeft
	ScrollRight
)

func (d Direction) String() string {
	switch d {
	case ScrollUp:
		return "ScrollUp"
	case ScrollDown:
		return "ScrollDown"
	case ScrollLeft:
		return "ScrollLeft"
	case ScrollRight:
		return "ScrollRight"
	default:
		return fmt.Sprintf("Direction(%d)", int32(d))
	}
}

// Horizontal reports whether the direction scrolls along the x axis.
func (d Direction) Horizontal() bool {
	return d == ScrollLeft || d == ScrollRight
}

// RequestKind is the kind of data the server asks the client for.
type RequestKind int32

const (
	RequestInitInfo RequestKind = iota
	RequestClipboard
	RequestMousePosition
)

func (r RequestKind) String() string {
	switch r {
	case RequestInitInfo:
		return "InitInfo"
	case RequestClipboard:
		return "Clipboard"
	case RequestMousePosition:
		return "MousePosition"
	default:
		return fmt.Sprintf("RequestKind(%d)", int32(r))
	}
}

// HandshakeResult is the server's verdict on the client's init info.
type HandshakeResult int32

const (
	HandshakeSuccess HandshakeResult = iota
	HandshakeRejection
)

func (h HandshakeResult) String() string {
	switch h {
	case HandshakeSuccess:
		return "Success"
	case HandshakeRejection:
		return "Rejection"
	default:
		return fmt.Sprintf("HandshakeResult(%d)", int32(h))
	}
}
