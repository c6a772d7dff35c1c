package client

import (
	"context"
	"os"
	"runtime"

	"jerry/application/command"
	"jerry/domain/session"
	"jerry/infrastructure/PAL/priority"
	palSignal "jerry/infrastructure/PAL/signal"
	"jerry/presentation/signals/exitkey"
	"jerry/presentation/signals/shutdown"
	"jerry/presentation/view/logview"
	"jerry/presentation/view/tui"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Runner wires the three long-lived goroutines of a client run: the view
// consuming the command bus, the exit key listener and the connection worker.
type Runner struct {
	deps   AppDependencies
	logger zerolog.Logger
	stdin  *os.File

	// runView and listenKeys are replaced in tests.
	runView    func(ctx context.Context, bus *command.Bus) error
	listenKeys func(ctx context.Context, bus *command.Bus)
}

func NewRunner(deps AppDependencies, logger zerolog.Logger) *Runner {
	r := &Runner{deps: deps, logger: logger, stdin: os.Stdin}
	r.runView = r.view
	r.listenKeys = r.exitKeys
	return r
}

func (r *Runner) Run(ctx context.Context) error {
	if err := r.deps.Initialize(); err != nil {
		return err
	}
	r.logger.Info().Msg("Program start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := command.NewBus()
	shutdown.NewHandler(ctx, cancel, bus, palSignal.NewDefaultProvider(), shutdown.NewNotifier(), r.logger).Handle()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer func() {
			bus.Detach()
			cancel()
			r.logger.Trace().Msg("Exiting the program: 1/4 | View goroutine has finished execution.")
		}()
		return r.runView(gctx, bus)
	})
	if r.deps.Params().DisplayMode == session.DisplayLogging {
		g.Go(func() error {
			defer r.logger.Trace().Msg("Exiting the program: 2/4 | KeyListener goroutine has finished execution.")
			r.listenKeys(gctx, bus)
			return nil
		})
	}
	g.Go(func() error {
		defer func() {
			cancel()
			r.logger.Trace().Msg("Exiting the program: 3/4 | Connection & MessageHandler goroutine has finished execution.")
		}()
		r.connect(gctx, bus)
		return nil
	})

	err := g.Wait()
	r.logger.Trace().Msg("Exiting the program: 4/4 | Main goroutine has finished execution.")
	return err
}

// connect runs the worker on a dedicated OS thread with raised priority so
// input is replayed promptly under load. The thread is never unlocked, so it
// exits with the goroutine instead of returning to the pool reprioritised.
func (r *Runner) connect(ctx context.Context, bus *command.Bus) {
	runtime.LockOSThread()
	if err := priority.RaiseCurrentThread(priority.Nice); err != nil {
		r.logger.Debug().Err(err).Msg("thread priority unchanged")
	}
	r.deps.Worker(bus).Run(ctx)
}

func (r *Runner) view(ctx context.Context, bus *command.Bus) error {
	if r.deps.Params().DisplayMode == session.DisplayLogging {
		logview.New(bus.Receive(), r.logger).Run(ctx)
		return nil
	}
	w, h := r.deps.MonitorSize()
	_, err := tui.Run(tui.New(ctx, bus.Receive(), bus, w, h))
	return err
}

func (r *Runner) exitKeys(ctx context.Context, bus *command.Bus) {
	restore, err := exitkey.PrepareTerminal(int(r.stdin.Fd()))
	if err != nil {
		r.logger.Debug().Err(err).Msg("exit keys unavailable, use ctrl+c to stop")
		<-ctx.Done()
		return
	}
	defer func() {
		if err := restore(); err != nil {
			r.logger.Warn().Err(err).Msg("failed to restore terminal")
		}
	}()
	exitkey.NewListener(r.stdin, bus, r.logger).Run(ctx)
}
