package exitkey

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"jerry/application/command"

	"github.com/rs/zerolog"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []command.Command
	err  error
}

func (s *recordingSender) Send(cmd command.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, cmd)
	return nil
}

func (s *recordingSender) last() command.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return nil
	}
	return s.sent[len(s.sent)-1]
}

func runListener(t *testing.T, ctx context.Context, l *Listener) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}
}

func TestListener_ExitKeysSendHalt(t *testing.T) {
	for _, in := range []string{"q", "Q", "\x1b", "abq"} {
		sender := &recordingSender{}
		runListener(t, context.Background(), NewListener(strings.NewReader(in), sender, zerolog.Nop()))
		if _, ok := sender.last().(command.Halt); !ok {
			t.Fatalf("input %q: expected Halt, got %T", in, sender.last())
		}
	}
}

func TestListener_EOFSendsHalt(t *testing.T) {
	sender := &recordingSender{}
	runListener(t, context.Background(), NewListener(strings.NewReader("abc"), sender, zerolog.Nop()))
	if _, ok := sender.last().(command.Halt); !ok {
		t.Fatalf("expected Halt after EOF, got %T", sender.last())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestListener_ReadErrorSendsHalt(t *testing.T) {
	sender := &recordingSender{}
	runListener(t, context.Background(), NewListener(failingReader{}, sender, zerolog.Nop()))
	if _, ok := sender.last().(command.Halt); !ok {
		t.Fatalf("expected Halt, got %T", sender.last())
	}
}

func TestListener_DrawsWhileIdle(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	sender := &recordingSender{}
	l := NewListener(pr, sender, zerolog.Nop())
	l.interval = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	runListener(t, ctx, l)

	if _, ok := sender.last().(command.Draw); !ok {
		t.Fatalf("expected Draw, got %T", sender.last())
	}
}

func TestListener_StopsWhenConsumerGone(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	l := NewListener(pr, &recordingSender{err: command.ErrConsumerGone}, zerolog.Nop())
	l.interval = time.Millisecond
	runListener(t, context.Background(), l)
}

func TestIsExitKey(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"q", true},
		{"\x1b", true},
		{"\x1b[A", false},
		{"x", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isExitKey([]byte(tt.in)); got != tt.want {
			t.Fatalf("isExitKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
