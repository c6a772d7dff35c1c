package client

import (
	"fmt"
	"net"
	"time"

	"jerry/application/command"
	"jerry/application/emulation"
	"jerry/application/handler"
	"jerry/application/orchestrator"
	"jerry/domain/session"
	"jerry/infrastructure/clipboard"
	"jerry/infrastructure/cryptography/keyexchange"
	"jerry/infrastructure/emulator"
	"jerry/infrastructure/network/tcp"
	"jerry/infrastructure/serialization/wire"
	"jerry/infrastructure/telemetry/trafficstats"

	"github.com/rs/zerolog"
)

const (
	connectRetryInterval = time.Second
	connectTimeout       = 5 * time.Second
)

type AppDependencies interface {
	Initialize() error
	Params() session.Params
	// MonitorSize is the geometry the state view scales the cursor to.
	MonitorSize() (int32, int32)
	Worker(sender command.Sender) *orchestrator.Worker
}

type Dependencies struct {
	params    session.Params
	logger    zerolog.Logger
	emulator  emulation.Emulator
	clipboard emulation.Clipboard
	connector orchestrator.Connector
}

func NewDependencies(params session.Params, logger zerolog.Logger) AppDependencies {
	return &Dependencies{params: params, logger: logger}
}

func (d *Dependencies) Initialize() error {
	if err := d.params.Validate(); err != nil {
		return fmt.Errorf("invalid session parameters: %w", err)
	}
	d.emulator = emulator.New(d.params.EmulateEvents, d.logger)
	if d.params.EmulateEvents {
		d.clipboard = clipboard.NewSystem()
	} else {
		d.clipboard = clipboard.NewMemory("")
	}
	d.connector = tcp.NewConnector(d.params.Addr, d.logger).
		WithAutomaticReconnection(connectRetryInterval).
		WithTimeout(connectTimeout).
		WithErrorClassifier(tcp.AbortOnConnectionAborted)
	return nil
}

func (d *Dependencies) Params() session.Params {
	return d.params
}

func (d *Dependencies) MonitorSize() (int32, int32) {
	if !d.params.Monitor.Dynamic {
		return int32(d.params.Monitor.Static.Width), int32(d.params.Monitor.Static.Height)
	}
	if sizer, ok := d.emulator.(emulation.DisplaySizer); ok {
		if w, h, err := sizer.DisplaySize(); err == nil {
			return w, h
		}
	}
	d.logger.Debug().Msg("display size unknown, using 1920x1080 for the state view")
	return 1920, 1080
}

// prepare tunes the socket and counts its traffic for the disconnect log.
func (d *Dependencies) prepare(conn net.Conn) (net.Conn, error) {
	prepared, err := tcp.Preparer(orchestrator.HeartbeatTimeout, d.logger)(conn)
	if err != nil {
		return nil, err
	}
	return trafficstats.NewConn(prepared, d.logger), nil
}

func (d *Dependencies) Worker(sender command.Sender) *orchestrator.Worker {
	consumers := func() handler.MessageConsumer {
		return handler.NewContextAwareHandler(sender, d.params, d.emulator, d.clipboard, d.logger)
	}
	return orchestrator.NewWorker(
		sender,
		d.connector,
		keyexchange.New(),
		wire.Framing{},
		consumers,
		d.prepare,
		d.logger,
	)
}
