package command

import (
	"jerry/domain/connection"
	"jerry/domain/input"
)

// Command is an item on the outward channel consumed by the presentation
// layer. Presentation only ever produces Draw and Halt.
type Command interface {
	isCommand()
}

// Draw asks the view to render a frame.
type Draw struct{}

// Message republishes a processed message.
type Message struct {
	Msg input.Message
}

// MessageCorrective republishes a release forced by recovery.
type MessageCorrective struct {
	Msg input.Message
}

type ConnectionResult struct {
	State connection.State
}

// Halt is the only shutdown signal.
type Halt struct{}

type ExitWithError struct {
	Reason string
}

func (Draw) isCommand()              {}
func (Message) isCommand()           {}
func (MessageCorrective) isCommand() {}
func (ConnectionResult) isCommand()  {}
func (Halt) isCommand()              {}
func (ExitWithError) isCommand()     {}
