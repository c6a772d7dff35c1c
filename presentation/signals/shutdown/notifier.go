package shutdown

import (
	"os"
	"os/signal"
)

// Notifier relays process signals through os/signal.
type Notifier struct{}

func NewNotifier() Notifier { return Notifier{} }

func (Notifier) Notify(c chan<- os.Signal, sig ...os.Signal) { signal.Notify(c, sig...) }

func (Notifier) Stop(c chan<- os.Signal) { signal.Stop(c) }
