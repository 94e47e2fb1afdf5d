package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	startupMessage  = "executor bootstrapped"
	shutdownMessage = "executor shutdown"
)

// Hook is used to observe state transitions and semi-fatal errors encountered during them.
type Hook func(phase string, err error)

// Option configures an Application before it runs.
type Option func(app *Application)

// WithHook replaces the no-op transition hook.
func WithHook(hook Hook) Option {
	return func(app *Application) {
		app.hook = hook
	}
}

// WithSignals overrides the signals that trigger shutdown. The default is os.Interrupt.
func WithSignals(signals ...os.Signal) Option {
	return func(app *Application) {
		app.signals = signals
	}
}

// WithNotifier overrides how the shutdown signal handler is installed.
func WithNotifier(n Notifier) Option {
	return func(app *Application) {
		app.notifier = n
	}
}

// WithPlugins registers plugins in start order. They shut down in reverse.
func WithPlugins(plugins ...Plugin) Option {
	return func(app *Application) {
		app.plugins = append(app.plugins, plugins...)
	}
}

// Application drives a process from a configured logger to a clean exit. It emits a
// startup marker, parks until a termination signal arrives, then emits a shutdown marker.
//
// An Application runs once. The logger is owned by the caller, who must have initialized
// it before constructing the Application.
type Application struct {
	state atomic.Int32
	ran   atomic.Bool

	log      *slog.Logger
	instance string

	signals  []os.Signal
	notifier Notifier

	context context.Context
	cancel  context.CancelFunc

	hook    Hook
	plugins []Plugin
}

// New returns an Application in the LoggingReady state.
func New(log *slog.Logger, opts ...Option) (*Application, error) {
	if log == nil {
		return nil, ErrNilLogger
	}

	app := &Application{
		log:      log,
		instance: uuid.NewString(),
		signals:  []os.Signal{os.Interrupt},
		notifier: signalNotifier{},
		hook:     func(phase string, err error) {},
	}
	app.context, app.cancel = context.WithCancel(context.Background())
	app.context = context.WithValue(app.context, InstanceIDKey, app.instance)

	for _, opt := range opts {
		opt(app)
	}

	app.transition(StateLoggingReady)
	return app, nil
}

// WithValue attaches a value to the context shared with plugins. It must be called
// before Run.
func (app *Application) WithValue(key, value interface{}) {
	app.context = context.WithValue(app.context, key, value)
}

// Context is canceled once shutdown begins.
func (app *Application) Context() context.Context {
	return app.context
}

var _ Contextual = &Application{}

func (app *Application) State() State {
	return State(app.state.Load())
}

// InstanceID identifies this run in both lifecycle markers.
func (app *Application) InstanceID() string {
	return app.instance
}

// Run emits the startup marker and blocks until one of the configured signals is
// delivered. It returns nil after the shutdown marker has been written.
func (app *Application) Run() error {
	if !app.ran.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}
	if len(app.signals) == 0 {
		return app.fail(ErrNoSignals)
	}

	for _, plugin := range app.plugins {
		if err := plugin.Initialize(app); err != nil {
			app.hook("initialization", err)
			return app.fail(err)
		}
	}

	// Installed before the startup marker so a signal sent right after it is not lost.
	sig := make(chan os.Signal, 1)
	if err := app.notifier.Notify(sig, app.signals...); err != nil {
		return app.fail(fmt.Errorf("%w: %w", ErrSignalRegistration, err))
	}
	defer app.notifier.Stop(sig)

	app.log.Info(startupMessage, "instance_id", app.instance)
	app.transition(StateRunning)

	for i, plugin := range app.plugins {
		if err := plugin.Start(app); err != nil {
			app.hook("startup", err)
			app.shutdown(app.plugins[:i])
			return app.fail(err)
		}
	}

	received := <-sig
	app.notifier.Stop(sig)

	app.shutdown(app.plugins)
	app.log.Info(shutdownMessage, "instance_id", app.instance, "signal", received.String())
	app.transition(StateTerminated)
	return nil
}

// shutdown stops plugins in reverse order. Their errors go to the hook only.
func (app *Application) shutdown(plugins []Plugin) {
	app.transition(StateShuttingDown)
	app.cancel()

	for i := len(plugins); i > 0; i-- {
		if err := plugins[i-1].Shutdown(app); err != nil {
			app.hook("shutdown", err)
		}
	}
}

func (app *Application) fail(err error) error {
	app.cancel()
	app.transition(StateTerminated)
	return err
}

func (app *Application) transition(to State) {
	app.state.Store(int32(to))
	app.hook(to.String(), nil)
}
