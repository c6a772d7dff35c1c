//go:build !windows

package shutdown

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestNotifier_DeliversUntilStopped(t *testing.T) {
	notifier := NewNotifier()
	ch := make(chan os.Signal, 1)
	notifier.Notify(ch, syscall.SIGUSR1)
	defer notifier.Stop(ch)

	if err := syscall.Kill(os.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("kill: %v", err)
	}
	select {
	case sig := <-ch:
		if sig != syscall.SIGUSR1 {
			t.Fatalf("unexpected signal %v", sig)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("signal was not delivered")
	}
}
