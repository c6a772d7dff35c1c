package logview

import (
	"context"

	"jerry/application/command"
	"jerry/domain/connection"
	"jerry/domain/input"

	"github.com/rs/zerolog"
)

// View writes every command to the log. It is the consumer in logging mode.
type View struct {
	commands <-chan command.Command
	logger   zerolog.Logger
}

func New(commands <-chan command.Command, logger zerolog.Logger) *View {
	return &View{commands: commands, logger: logger}
}

// Run consumes commands until Halt, ExitWithError, a closed channel or ctx
// cancellation.
func (v *View) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-v.commands:
			if !ok {
				v.logger.Debug().Msg("command channel closed")
				return
			}
			if v.handle(cmd) {
				return
			}
		}
	}
}

// handle reports whether the view should stop.
func (v *View) handle(cmd command.Command) bool {
	switch c := cmd.(type) {
	case command.Draw:
	case command.Message:
		v.message(c.Msg, false)
	case command.MessageCorrective:
		v.message(c.Msg, true)
	case command.ConnectionResult:
		v.connection(c.State)
	case command.ExitWithError:
		v.logger.Error().Str("reason", c.Reason).Msg("Received a command to exit due to an error")
		return true
	case command.Halt:
		v.logger.Info().Msg("Received a command to exit.")
		return true
	}
	return false
}

func (v *View) message(msg input.Message, corrective bool) {
	switch m := msg.(type) {
	case input.MouseMove:
		v.logger.Trace().Int32("x", m.X).Int32("y", m.Y).Msg("Mouse move")
	case input.Key:
		if corrective {
			v.logger.Debug().Str("key", input.KeyName(m.Code)).Stringer("state", m.State).Msg("Self-recovery message: key")
			return
		}
		v.logger.Debug().Str("key", input.KeyName(m.Code)).Stringer("state", m.State).Uint32("code", m.Code).Msg("Key")
	case input.MouseClick:
		if corrective {
			v.logger.Debug().Stringer("button", m.Button).Stringer("state", m.State).Msg("Self-recovery message: mouse button")
			return
		}
		v.logger.Trace().Stringer("button", m.Button).Stringer("state", m.State).Msg("Mouse button")
	case input.MouseWheel:
		v.logger.Trace().Stringer("direction", m.Direction).Int32("amount", m.Amount).Msg("Mouse wheel")
	case input.Handshake:
		if m.Message == "" {
			v.logger.Info().Stringer("result", m.Result).Msg("Connection result")
			return
		}
		v.logger.Warn().Stringer("result", m.Result).Str("description", m.Message).Msg("Connection result")
	case input.SessionBegin:
		if m.RelativeMove {
			v.logger.Info().Msg("Activated [relative movement]")
		} else {
			v.logger.Info().Msg("Activated [absolute movement]")
		}
	case input.SessionEnd:
		v.logger.Info().Msg("Deactivated")
	case input.Clipboard:
		v.logger.Debug().Str("content", m.Content).Msg("New clipboard content")
		v.logger.Info().Int("length", len(m.Content)).Msg("New clipboard content")
	case input.Request:
		v.logger.Debug().Stringer("request", m.Kind).Msg("Request message")
	case input.Heartbeat:
	}
}

func (v *View) connection(state connection.State) {
	switch state.Kind {
	case connection.KeyExchangeFailed, connection.HandshakeFailed:
		v.logger.Error().Stringer("state", state).Msg("Connection result")
	case connection.ReadError:
		v.logger.Warn().Stringer("state", state).Str("reason", state.Reason).Msg("Connection result")
	default:
		v.logger.Info().Stringer("state", state).Msg("Connection result")
	}
}
