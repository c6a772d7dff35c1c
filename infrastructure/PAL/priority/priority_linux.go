//go:build linux

package priority

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// RaiseCurrentThread sets the niceness of the calling OS thread. The caller
// must hold the thread with runtime.LockOSThread. Lowering niceness needs
// CAP_SYS_NICE, so callers treat failure as non-fatal.
func RaiseCurrentThread(nice int) error {
	if err := unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), nice); err != nil {
		return fmt.Errorf("setpriority %d: %w", nice, err)
	}
	return nil
}

// CurrentThread returns the niceness of the calling OS thread.
func CurrentThread() (int, error) {
	// getpriority returns 20-nice to keep the result positive.
	p, err := unix.Getpriority(unix.PRIO_PROCESS, unix.Gettid())
	if err != nil {
		return 0, err
	}
	return 20 - p, nil
}
