package ports

import "context"

// HealthChecker is implemented by any component that can report whether it is
// usable in the current process environment.
// Examples: the terminal dialog surface (requires a TTY).
type HealthChecker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "terminal").
	Name() string

	// HealthCheck performs the check and returns nil if healthy,
	// or an error describing the failure.
	// Implementations should respect context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Used at startup to choose between the terminal and console dialog surfaces.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error

	// Ready runs every check and returns the joined failures, or nil when
	// all registered components are usable.
	Ready(ctx context.Context) error
}
