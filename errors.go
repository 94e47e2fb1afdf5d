package lifecycle

import (
	"fmt"
)

var (
	ErrNilLogger          = fmt.Errorf("application requires an initialized logger")
	ErrAlreadyRun         = fmt.Errorf("application can only be run once")
	ErrNoSignals          = fmt.Errorf("no shutdown signals configured")
	ErrSignalRegistration = fmt.Errorf("failed to install signal handler")
)
