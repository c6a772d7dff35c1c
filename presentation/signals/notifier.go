package signals

import "os"

type Notifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type Handler interface {
	Handle()
}
