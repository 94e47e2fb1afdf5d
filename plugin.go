package lifecycle

// Plugin attaches work to an Application's lifecycle. Initialize runs before the startup
// marker and must not log; Start runs once the application is running; Shutdown runs in
// reverse registration order after the signal and before the shutdown marker.
type Plugin interface {
	Initialize(app *Application) error
	Start(app *Application) error
	Shutdown(app *Application) error
}

// PluginFuncs can be used to write partial stateless plugins.
type PluginFuncs struct {
	InitializeFunc func(app *Application) error
	StartFunc      func(app *Application) error
	ShutdownFunc   func(app *Application) error
}

func (p PluginFuncs) Initialize(app *Application) error {
	if p.InitializeFunc == nil {
		return nil
	}
	return p.InitializeFunc(app)
}

func (p PluginFuncs) Start(app *Application) error {
	if p.StartFunc == nil {
		return nil
	}
	return p.StartFunc(app)
}

func (p PluginFuncs) Shutdown(app *Application) error {
	if p.ShutdownFunc == nil {
		return nil
	}
	return p.ShutdownFunc(app)
}

var _ Plugin = PluginFuncs{}
