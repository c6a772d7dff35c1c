package emulator

import (
	"sync"

	"jerry/application/emulation"
	"jerry/domain/input"
)

// NoopEmulator tracks the cursor without touching the OS. It is used when
// event emulation is off, e.g. against a server on the loopback interface.
type NoopEmulator struct {
	mu      sync.Mutex
	x, y    int32
	display emulation.DisplaySizer
}

// NewNoopEmulator starts with the cursor at (400, 400). display, if non-nil,
// answers DisplaySize.
func NewNoopEmulator(display emulation.DisplaySizer) *NoopEmulator {
	return &NoopEmulator{x: 400, y: 400, display: display}
}

func (e *NoopEmulator) MouseMoveRel(dx, dy int32) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.x += dx
	e.y += dy
	return nil
}

func (e *NoopEmulator) MouseMoveTo(x, y int32) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.x, e.y = x, y
	return nil
}

func (e *NoopEmulator) Cursor() (int32, int32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.x, e.y, nil
}

func (e *NoopEmulator) MouseUp(input.Button) error                { return nil }
func (e *NoopEmulator) MouseDown(input.Button) error              { return nil }
func (e *NoopEmulator) MouseWheel(input.Direction, float32) error { return nil }
func (e *NoopEmulator) KeyDown(uint32) error                      { return nil }
func (e *NoopEmulator) KeyUp(uint32) error                        { return nil }

func (e *NoopEmulator) DisplaySize() (int32, int32, error) {
	if e.display == nil {
		return 0, 0, emulation.Unable("display size unavailable")
	}
	return e.display.DisplaySize()
}
