package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("clipboard is not supported on this system")

// System is the OS clipboard.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Memory is a process-local clipboard used when the client does not emulate
// events, so a loopback session never overwrites the user's clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

func NewMemory(initial string) *Memory {
	return &Memory{text: initial}
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
