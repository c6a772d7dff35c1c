package emulation

import "jerry/domain/input"

// Emulator injects input events into the local machine.
type Emulator interface {
	MouseMoveRel(dx, dy int32) error
	MouseMoveTo(x, y int32) error
	Cursor() (x, y int32, err error)
	MouseUp(button input.Button) error
	MouseDown(button input.Button) error
	MouseWheel(direction input.Direction, amount float32) error
	KeyDown(code uint32) error
	KeyUp(code uint32) error
}

// DisplaySizer is implemented by emulators that can report the geometry of
// the primary display.
type DisplaySizer interface {
	DisplaySize() (width, height int32, err error)
}

// Clipboard reads and writes the local clipboard as text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}
