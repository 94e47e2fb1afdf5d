package lifecycle

import (
	"context"
)

// ContextKey namespaces values attached with Application.WithValue.
type ContextKey string

// InstanceIDKey holds the run's instance ID in Application.Context.
const InstanceIDKey ContextKey = "instance_id"

func (c ContextKey) String() string {
	return "executor." + string(c)
}

// Contextual represents an object that carries a context accessible via a Context() method.
type Contextual interface {
	Context() context.Context
}
