package wire

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"

	"jerry/domain/input"

	"github.com/google/go-cmp/cmp"
)

type scriptedConsumer struct {
	seen      []input.Message
	responses map[int]input.Response
	finishAt  int
}

func (c *scriptedConsumer) Consume(msg input.Message) input.Response {
	c.seen = append(c.seen, msg)
	return c.responses[len(c.seen)-1]
}

func (c *scriptedConsumer) Finished() bool {
	return c.finishAt > 0 && len(c.seen) >= c.finishAt
}

type countingWriter struct {
	bytes.Buffer
	writes  int
	flushes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func (w *countingWriter) Flush() error {
	w.flushes++
	return nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func encodeFrames(t *testing.T, msgs ...input.Message) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	for _, m := range msgs {
		payload, err := FromMessage(m).MarshalBinary()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := WriteFrame(&buf, payload); err != nil {
			t.Fatalf("write frame: %v", err)
		}
	}
	return &buf
}

func TestFrame_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	payloads := [][]byte{{}, []byte("a"), bytes.Repeat([]byte{0x7f}, 300)}
	for _, p := range payloads {
		if err := WriteFrame(&buf, p); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	r := bufio.NewReader(&buf)
	for i, want := range payloads {
		got, err := ReadFrame(r)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("frame %d: got %d bytes, want %d", i, len(got), len(want))
		}
	}
	if _, err := ReadFrame(r); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after last frame, got %v", err)
	}
}

func TestWriteFrame_SingleWriteAndFlush(t *testing.T) {
	w := &countingWriter{}
	if err := WriteFrame(w, []byte("payload")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if w.writes != 1 || w.flushes != 1 {
		t.Fatalf("expected 1 write and 1 flush, got %d/%d", w.writes, w.flushes)
	}
	if got := w.Bytes(); got[0] != 7 {
		t.Fatalf("expected length prefix 7, got %d", got[0])
	}
}

func TestReadFrame_TooLarge(t *testing.T) {
	// varint for 32 MiB
	r := bufio.NewReader(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x10}))
	if _, err := ReadFrame(r); !errors.Is(err, ErrMessageTooLarge) {
		t.Fatalf("expected ErrMessageTooLarge, got %v", err)
	}
}

func TestReadFrame_TruncatedPayload(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte{5, 'a', 'b'}))
	if _, err := ReadFrame(r); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestListenLoop_StopsWhenConsumerFinished(t *testing.T) {
	in := encodeFrames(t,
		input.SessionBegin{},
		input.Key{Code: 0x10, State: input.Pressed},
		input.SessionEnd{},
		input.Heartbeat{},
	)
	c := &scriptedConsumer{finishAt: 3}
	l := NewListener(in, io.Discard)

	if err := l.ListenLoop(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []input.Message{
		input.SessionBegin{},
		input.Key{Code: 0x10, State: input.Pressed},
		input.SessionEnd{},
	}
	if diff := cmp.Diff(want, c.seen); diff != "" {
		t.Fatalf("consumed mismatch (-want +got):\n%s", diff)
	}
}

func TestListenLoop_WritesResponses(t *testing.T) {
	in := encodeFrames(t,
		input.Request{Kind: input.RequestMousePosition},
		input.Heartbeat{},
		input.Request{Kind: input.RequestClipboard},
	)
	c := &scriptedConsumer{
		finishAt: 3,
		responses: map[int]input.Response{
			0: input.CursorResponse{X: 10, Y: 20},
			2: input.NoResponse{},
		},
	}
	out := &countingWriter{}
	if err := NewListener(in, out).ListenLoop(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.flushes != 2 {
		t.Fatalf("expected 2 flushed responses, got %d", out.flushes)
	}

	r := bufio.NewReader(&out.Buffer)
	var got []input.Response
	for {
		payload, err := ReadFrame(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("read response: %v", err)
		}
		var m SlaveMessage
		if err := m.UnmarshalBinary(payload); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		got = append(got, ToResponse(&m))
	}
	want := []input.Response{input.CursorResponse{X: 10, Y: 20}, input.NoResponse{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("responses mismatch (-want +got):\n%s", diff)
	}
}

func TestListenLoop_EmptyFrameIsHeartbeat(t *testing.T) {
	var in bytes.Buffer
	_ = WriteFrame(&in, nil)
	c := &scriptedConsumer{finishAt: 1}
	if err := NewListener(&in, io.Discard).ListenLoop(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]input.Message{input.Heartbeat{}}, c.seen); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestListenLoop_ReadError(t *testing.T) {
	in := encodeFrames(t, input.Heartbeat{})
	err := NewListener(in, io.Discard).ListenLoop(&scriptedConsumer{})
	if !errors.Is(err, ErrRead) {
		t.Fatalf("expected ErrRead, got %v", err)
	}
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected wrapped io.EOF, got %v", err)
	}
}

func TestListenLoop_WriteError(t *testing.T) {
	in := encodeFrames(t, input.Request{Kind: input.RequestMousePosition})
	c := &scriptedConsumer{responses: map[int]input.Response{0: input.CursorResponse{}}}
	err := NewListener(in, failingWriter{}).ListenLoop(c)
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}

func TestListenLoop_FinishedBeforeFirstRead(t *testing.T) {
	c := &scriptedConsumer{seen: []input.Message{input.Heartbeat{}}, finishAt: 1}
	if err := NewListener(bytes.NewReader(nil), io.Discard).ListenLoop(c); err != nil {
		t.Fatalf("expected clean return, got %v", err)
	}
}
