package shutdown

import (
	"context"
	"os"
	"sync"

	"jerry/application/command"
	palSignal "jerry/infrastructure/PAL/signal"
	"jerry/presentation/signals"

	"github.com/rs/zerolog"
)

type Handler struct {
	// appCtx is application context.
	// If this context is cancelled - handler must stop its job and return.
	appCtx context.Context
	// appCtxCancel - cancellation func that must be used to cancel appCtx.
	appCtxCancel context.CancelFunc
	// sender receives a Halt so the view stops in order with queued commands.
	sender command.Sender
	// signalChan - channel of signals that handler is supposed to handle (shutdown signals in this case)
	signalChan chan os.Signal
	once       sync.Once
	// signalProvider is used to provide shutdown signal set for current platform.
	signalProvider palSignal.Provider
	// notifier used to subscribe to OS Signal and to unsubscribe from it
	notifier signals.Notifier
	logger   zerolog.Logger
}

func NewHandler(
	appCtx context.Context,
	appCtxCancel context.CancelFunc,
	sender command.Sender,
	signalProvider palSignal.Provider,
	notifier signals.Notifier,
	logger zerolog.Logger,
) signals.Handler {
	return &Handler{
		appCtx:       appCtx,
		appCtxCancel: appCtxCancel,
		sender:       sender,
		// Note: 1-sized buffer used as os/signal uses non-blocking sends and may drop signals if unbuffered.
		signalChan:     make(chan os.Signal, 1),
		signalProvider: signalProvider,
		notifier:       notifier,
		logger:         logger,
	}
}

func (h *Handler) Handle() {
	h.once.Do(func() {
		h.listenAndHandleShutdownSignals()
	})
}

func (h *Handler) listenAndHandleShutdownSignals() {
	h.subscribe()
	go func() {
		defer func() {
			h.unsubscribe()
		}()
		select {
		case sig := <-h.signalChan:
			h.logger.Info().Stringer("signal", sig).Msg("Shutdown signal received. Shutting down...")
			if err := h.sender.Send(command.Halt{}); err != nil {
				h.logger.Debug().Err(err).Msg("halt not delivered")
			}
			h.appCtxCancel()
		case <-h.appCtx.Done():
		}
	}()
}

func (h *Handler) subscribe() {
	h.notifier.Notify(h.signalChan, h.signalProvider.ShutdownSignals()...)
}

func (h *Handler) unsubscribe() {
	h.notifier.Stop(h.signalChan)
}
