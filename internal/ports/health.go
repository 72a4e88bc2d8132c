package ports

import "context"

// HealthChecker is a dependency the readiness check can test, such as the
// git repository the tag reader is bound to.
type HealthChecker interface {
	// Name keys the checker's entry in the readiness report.
	Name() string

	// HealthCheck returns nil while the dependency is usable. It must give
	// up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry fans a readiness check out to every registered checker.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every check and reports each outcome by name; a nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
