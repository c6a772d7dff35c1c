//go:build !linux

package exitkey

import "golang.org/x/term"

func setCbreak(fd int) error {
	_, err := term.MakeRaw(fd)
	return err
}
