package exitkey

import (
	"errors"

	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("input is not a terminal")

// PrepareTerminal switches fd to unbuffered, unechoed input so single key
// presses reach the listener. The returned func restores the previous mode.
func PrepareTerminal(fd int) (func() error, error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := term.GetState(fd)
	if err != nil {
		return nil, err
	}
	if err := setCbreak(fd); err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}
