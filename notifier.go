package lifecycle

import (
	"os"
	"os/signal"
)

// Notifier installs and removes the handler that relays shutdown signals.
type Notifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal) error
	Stop(c chan<- os.Signal)
}

// signalNotifier relays process signals through os/signal.
type signalNotifier struct{}

func (signalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) error {
	// signal.Notify with no signals relays every signal, which is never what we want.
	if len(sig) == 0 {
		return ErrNoSignals
	}
	signal.Notify(c, sig...)
	return nil
}

func (signalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

var _ Notifier = signalNotifier{}
