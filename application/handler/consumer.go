package handler

import "jerry/domain/input"

// MessageConsumer processes one inbound message at a time and optionally
// answers it. Once Finished reports true the framing loop stops reading.
type MessageConsumer interface {
	Consume(msg input.Message) input.Response
	Finished() bool
}

// Releaser is implemented by consumers that hold local input state which must
// be dropped when the connection ends.
type Releaser interface {
	ReleaseHeld()
}
