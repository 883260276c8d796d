package ports

import "context"

// HealthChecker is implemented by a dependency the readiness probe reports
// on, such as the petition store or the constituency lookup client.
type HealthChecker interface {
	// Name identifies the component in readiness output ("store",
	// "constituency-api").
	Name() string

	// HealthCheck returns nil when the component is usable. Implementations
	// must respect ctx deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them on each readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one result per registered checker, keyed by name.
	// Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
