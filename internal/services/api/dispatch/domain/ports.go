package domain

import "context"

// Call is one workflow_dispatch invocation
type Call struct {
	Workflow string
	Ref      string
	Inputs   map[string]string
}

// Dispatcher issues exactly one remote dispatch per call
type Dispatcher interface {
	Dispatch(ctx context.Context, c Call) error
}

// ServicePort is the interface implemented by the dispatch service
type ServicePort interface {
	Dispatch(ctx context.Context, target string, in PatchRequest) (Accepted, error)
	Targets() Targets
	Configured() bool
}

// Readiness reports whether a dispatch credential is configured, never the credential itself
type Readiness interface {
	Configured() bool
}
