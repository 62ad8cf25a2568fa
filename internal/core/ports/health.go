package ports

import "context"

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping returns nil if the dependency is reachable.
	Ping(ctx context.Context) error
	// Name returns the dependency name, e.g. "postgresql".
	Name() string
}

// Probe adapts a named ping function to HealthChecker.
type Probe struct {
	Dependency string
	Fn         func(ctx context.Context) error
}

func (p Probe) Name() string { return p.Dependency }

func (p Probe) Ping(ctx context.Context) error { return p.Fn(ctx) }
