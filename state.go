package lifecycle

// State is a position in the Application state machine:
//
//	Uninitialized -> LoggingReady -> Running -> ShuttingDown -> Terminated
//
// Failures before Running jump straight to Terminated.
type State int32

const (
	StateUninitialized State = iota
	StateLoggingReady
	StateRunning
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoggingReady:
		return "logging-ready"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting-down"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
