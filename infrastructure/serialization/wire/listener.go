package wire

import (
	"bufio"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"jerry/application/handler"

	"google.golang.org/protobuf/encoding/protowire"
)

// MaxFrameSize bounds a single length-delimited message.
const MaxFrameSize = 16 << 20

var (
	ErrRead            = errors.New("read message error")
	ErrWrite           = errors.New("write message error")
	ErrMessageTooLarge = errors.New("message exceeds maximum frame size")
)

type flusher interface {
	Flush() error
}

// ReadFrame reads one varint length prefix and the payload that follows it.
// A clean EOF before the prefix is returned as io.EOF.
func ReadFrame(r *bufio.Reader) ([]byte, error) {
	size, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if size > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return payload, nil
}

// WriteFrame writes the prefix and payload in a single call and flushes w
// when it buffers.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(payload))
	}
	frame := protowire.AppendVarint(make([]byte, 0, len(payload)+binary.MaxVarintLen32), uint64(len(payload)))
	frame = append(frame, payload...)
	if _, err := w.Write(frame); err != nil {
		return err
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Listener reads MasterMessages from the inbound stream and answers with
// SlaveMessages on the outbound one.
type Listener struct {
	in  *bufio.Reader
	out io.Writer
}

func NewListener(in io.Reader, out io.Writer) *Listener {
	return &Listener{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (l *Listener) ReadMessage() (*MasterMessage, error) {
	payload, err := ReadFrame(l.in)
	if err != nil {
		return nil, err
	}
	msg := &MasterMessage{}
	if err := msg.UnmarshalBinary(payload); err != nil {
		return nil, err
	}
	return msg, nil
}

func (l *Listener) WriteMessage(msg encoding.BinaryMarshaler) error {
	payload, err := msg.MarshalBinary()
	if err != nil {
		return err
	}
	return WriteFrame(l.out, payload)
}

// ListenLoop feeds every inbound message to consumer and writes back its
// responses until the consumer is finished. Failures are wrapped in ErrRead
// or ErrWrite.
func (l *Listener) ListenLoop(consumer handler.MessageConsumer) error {
	for !consumer.Finished() {
		msg, err := l.ReadMessage()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
		resp := consumer.Consume(ToMessage(msg))
		if resp == nil {
			continue
		}
		if err := l.WriteMessage(FromResponse(resp)); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	return nil
}

// Framing runs a fresh Listener for every connection.
type Framing struct{}

func (Framing) Serve(in io.Reader, out io.Writer, consumer handler.MessageConsumer) error {
	return NewListener(in, out).ListenLoop(consumer)
}
