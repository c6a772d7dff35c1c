package handler

import (
	"errors"
	"time"

	"jerry/application/command"
	"jerry/application/emulation"
	"jerry/domain/connection"
	"jerry/domain/input"
	"jerry/domain/session"

	"github.com/rs/zerolog"
)

const (
	// clipboardDebounce is the minimum session age before a clipboard pull
	// is answered.
	clipboardDebounce = 500 * time.Millisecond
	releasePause      = time.Millisecond
)

type sessionState int

const (
	stateNone sessionState = iota
	stateActive
	stateInactive
)

func (s sessionState) String() string {
	switch s {
	case stateActive:
		return "active"
	case stateInactive:
		return "inactive"
	default:
		return "none"
	}
}

// ContextAwareHandler applies server messages to the local machine, keeping
// track of every key and button it holds down so they can be released when the
// session ends or the command consumer goes away.
type ContextAwareHandler struct {
	sender    command.Sender
	params    session.Params
	emulator  emulation.Emulator
	clipboard emulation.Clipboard
	logger    zerolog.Logger

	state        sessionState
	relativeMove bool
	pressed      [input.KeyCount]bool
	buttons      [input.ButtonCount]bool
	cursorX      int32
	cursorY      int32

	// localClipboard is the clipboard content captured when the session began
	// and restored when it ends. remoteClipboard is the last content pushed by
	// the server.
	localClipboard  *string
	remoteClipboard *string

	sessionStart time.Time
	finished     bool

	now   func() time.Time
	pause func(time.Duration)
}

func NewContextAwareHandler(
	sender command.Sender,
	params session.Params,
	emulator emulation.Emulator,
	clipboard emulation.Clipboard,
	logger zerolog.Logger,
) *ContextAwareHandler {
	h := &ContextAwareHandler{
		sender:    sender,
		params:    params,
		emulator:  emulator,
		clipboard: clipboard,
		logger:    logger,
		now:       time.Now,
		pause:     time.Sleep,
	}
	h.sessionStart = h.now()
	if x, y, err := emulator.Cursor(); err == nil {
		h.cursorX, h.cursorY = x, y
	} else if !params.Monitor.Dynamic {
		h.cursorX = int32(params.Monitor.Static.Width / 2)
		h.cursorY = int32(params.Monitor.Static.Height / 2)
	}
	return h
}

func (h *ContextAwareHandler) Finished() bool {
	return h.finished
}

// ReleaseHeld releases every key and button still held. The orchestrator
// calls it when the connection drops mid-session.
func (h *ContextAwareHandler) ReleaseHeld() {
	h.releaseHeld()
}

func (h *ContextAwareHandler) Consume(msg input.Message) input.Response {
	var (
		response input.Response
		err      error
	)
	switch m := msg.(type) {
	case input.MouseMove:
		err = h.mouseMove(m.X, m.Y)
	case input.Key:
		if m.State == input.Pressed {
			err = h.keyDown(m.Code)
		} else {
			err = h.keyUp(m.Code)
		}
	case input.MouseClick:
		if m.State == input.Pressed {
			err = h.mouseDown(m.Button)
		} else {
			err = h.mouseUp(m.Button)
		}
	case input.MouseWheel:
		err = h.mouseWheel(m.Direction, m.Amount)
	case input.Request:
		response = h.respond(m.Kind)
	case input.SessionBegin:
		err = h.beginSession(m.RelativeMove)
	case input.SessionEnd:
		err = h.endSession()
	case input.Handshake:
		h.handshake(m)
	case input.Clipboard:
		err = h.pushClipboard(m)
	case input.Heartbeat:
	default:
		err = emulation.ErrDiscarded
	}

	h.publish(command.Message{Msg: msg})
	h.report(err)
	return response
}

// publish forwards cmd to the consumer. When the consumer is gone every held
// key and button is released and the handler finishes.
func (h *ContextAwareHandler) publish(cmd command.Command) {
	if err := h.sender.Send(cmd); err != nil {
		if !h.finished {
			h.logger.Debug().Err(err).Msg("command consumer unavailable, releasing held input")
		}
		h.releaseHeld()
		h.finished = true
	}
}

func (h *ContextAwareHandler) report(err error) {
	if err == nil || emulation.IsDiscarded(err) {
		return
	}
	var pErr *emulation.ProcessingError
	if errors.As(err, &pErr) && pErr.Kind == emulation.FailedToProcess {
		h.logger.Warn().Err(err).Msg("Emulation process error: Action failed to execute emulation function.")
		return
	}
	h.logger.Warn().Err(err).Msg("Emulation failure: Unable to emulate input based on provided data.")
}

func (h *ContextAwareHandler) beginSession(relative bool) error {
	if h.state == stateActive {
		return emulation.ErrDiscarded
	}
	h.sessionStart = h.now()
	h.relativeMove = relative
	h.localClipboard = h.readClipboard()
	h.pressed = [input.KeyCount]bool{}
	h.buttons = [input.ButtonCount]bool{}
	h.state = stateActive
	return nil
}

func (h *ContextAwareHandler) endSession() error {
	if h.state != stateActive {
		return emulation.ErrDiscarded
	}
	h.state = stateInactive
	h.releaseHeld()
	h.remoteClipboard = nil
	if h.localClipboard != nil {
		if err := h.clipboard.WriteText(*h.localClipboard); err != nil {
			h.logger.Warn().Err(err).Msg("failed to restore local clipboard")
		}
	}
	return nil
}

func (h *ContextAwareHandler) mouseMove(x, y int32) error {
	if h.state != stateActive {
		return emulation.ErrDiscarded
	}
	if h.relativeMove {
		if err := h.emulator.MouseMoveRel(x, y); err != nil {
			return err
		}
		h.cursorX += x
		h.cursorY += y
		return nil
	}
	if err := h.emulator.MouseMoveTo(x, y); err != nil {
		return err
	}
	h.cursorX, h.cursorY = x, y
	return nil
}

func (h *ContextAwareHandler) keyDown(code uint32) error {
	if h.state != stateActive || code >= input.KeyCount {
		return emulation.ErrDiscarded
	}
	if err := h.emulator.KeyDown(code); err != nil {
		return err
	}
	h.pressed[code] = true
	return nil
}

func (h *ContextAwareHandler) keyUp(code uint32) error {
	if h.state != stateActive || code >= input.KeyCount || !h.pressed[code] {
		return emulation.ErrDiscarded
	}
	if err := h.emulator.KeyUp(code); err != nil {
		return err
	}
	h.pressed[code] = false
	return nil
}

func (h *ContextAwareHandler) mouseDown(button input.Button) error {
	if h.state != stateActive || !button.Valid() {
		return emulation.ErrDiscarded
	}
	if err := h.emulator.MouseDown(button); err != nil {
		return err
	}
	h.buttons[button] = true
	return nil
}

func (h *ContextAwareHandler) mouseUp(button input.Button) error {
	if h.state != stateActive || !button.Valid() || !h.buttons[button] {
		return emulation.ErrDiscarded
	}
	if err := h.emulator.MouseUp(button); err != nil {
		return err
	}
	h.buttons[button] = false
	return nil
}

func (h *ContextAwareHandler) mouseWheel(direction input.Direction, amount int32) error {
	if h.state != stateActive {
		return emulation.ErrDiscarded
	}
	return h.emulator.MouseWheel(direction, float32(amount))
}

func (h *ContextAwareHandler) respond(kind input.RequestKind) input.Response {
	switch kind {
	case input.RequestInitInfo:
		return input.InitInfoResponse{Info: h.clientInfo()}
	case input.RequestClipboard:
		if h.now().Sub(h.sessionStart) < clipboardDebounce {
			return input.NoResponse{}
		}
		content := h.readClipboard()
		if content == nil {
			return input.NoResponse{}
		}
		h.logger.Info().Int("length", len(*content)).Msg("Clipboard content")
		return input.ClipboardResponse{Content: *content}
	case input.RequestMousePosition:
		if x, y, err := h.emulator.Cursor(); err == nil {
			h.cursorX, h.cursorY = x, y
		}
		return input.CursorResponse{X: h.cursorX, Y: h.cursorY}
	default:
		h.logger.Warn().Stringer("request", kind).Msg("unknown request")
		return input.NoResponse{}
	}
}

func (h *ContextAwareHandler) clientInfo() session.ClientInfo {
	info := session.ClientInfo{
		Name:     h.params.ClientName,
		GUID:     h.params.ClientGUID,
		Password: h.params.ServerPassword,
		System:   session.CurrentOS(),
	}
	if !h.params.Monitor.Dynamic {
		info.Width = int32(h.params.Monitor.Static.Width)
		info.Height = int32(h.params.Monitor.Static.Height)
		info.CursorX = info.Width / 2
		info.CursorY = info.Height / 2
		return info
	}
	if sizer, ok := h.emulator.(emulation.DisplaySizer); ok {
		w, hgt, err := sizer.DisplaySize()
		if err != nil {
			h.logger.Warn().Err(err).Msg("failed to query display size")
		} else {
			info.Width, info.Height = w, hgt
		}
	}
	if x, y, err := h.emulator.Cursor(); err == nil {
		h.cursorX, h.cursorY = x, y
	}
	info.CursorX, info.CursorY = h.cursorX, h.cursorY
	return info
}

func (h *ContextAwareHandler) handshake(m input.Handshake) {
	if m.Result == input.HandshakeRejection {
		h.publish(command.ConnectionResult{State: connection.NewStateWithReason(connection.HandshakeFailed, m.Message)})
		h.publish(command.Halt{})
		return
	}
	h.publish(command.ConnectionResult{State: connection.NewStateWithReason(connection.HandshakeSuccess, m.Message)})
}

func (h *ContextAwareHandler) pushClipboard(m input.Clipboard) error {
	if m.FileList {
		return emulation.ErrDiscarded
	}
	content := m.Content
	h.remoteClipboard = &content
	if err := h.clipboard.WriteText(content); err != nil {
		return emulation.Failed(err)
	}
	return nil
}

func (h *ContextAwareHandler) readClipboard() *string {
	text, err := h.clipboard.ReadText()
	if err != nil {
		h.logger.Debug().Err(err).Msg("clipboard read failed")
		return nil
	}
	return &text
}

// releaseHeld releases every held key, then every held button, in ascending
// order. A failed release is logged and does not stop the rest.
func (h *ContextAwareHandler) releaseHeld() {
	for code := range h.pressed {
		if !h.pressed[code] {
			continue
		}
		h.pressed[code] = false
		name := input.KeyName(uint32(code))
		if err := h.emulator.KeyUp(uint32(code)); err != nil {
			h.logger.Warn().Err(err).Str("key", name).Msg("Self-recovery: failed to release key")
		} else {
			h.logger.Info().Str("key", name).Msg("Self-recovery: key released")
		}
		_ = h.sender.Send(command.MessageCorrective{Msg: input.Key{Code: uint32(code), State: input.Released}})
		h.pause(releasePause)
	}
	for i := range h.buttons {
		if !h.buttons[i] {
			continue
		}
		h.buttons[i] = false
		button := input.Button(i)
		if err := h.emulator.MouseUp(button); err != nil {
			h.logger.Warn().Err(err).Stringer("button", button).Msg("Self-recovery: failed to release button")
		} else {
			h.logger.Info().Stringer("button", button).Msg("Self-recovery: button released")
		}
		_ = h.sender.Send(command.MessageCorrective{Msg: input.MouseClick{Button: button, State: input.Released}})
		h.pause(releasePause)
	}
}
