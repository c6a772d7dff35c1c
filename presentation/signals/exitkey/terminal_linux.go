package exitkey

import "golang.org/x/sys/unix"

// setCbreak disables line buffering and echo but keeps output processing and
// signal keys, so log lines still render and ctrl+c still interrupts.
func setCbreak(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	return unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
