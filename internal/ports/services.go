package ports

import (
	"context"

	"github.com/jsamuelsen11/domainversion/internal/domain/version"
)

// VersionService defines the service port for domain version resolution.
// Implemented by the application layer; called by the CLI and HTTP handlers.
type VersionService interface {
	// Resolve returns the version string of a declared domain.
	// Returns domain.ErrUnknownDomain if the name is not declared.
	Resolve(ctx context.Context, name string) (string, error)

	// ResolveDefault infers the domain from projectDir, a directory inside
	// the repository, and returns its version string. Absolute directories
	// are made relative to the repository root first.
	// Returns domain.ErrValidation if projectDir lies outside the repository.
	ResolveDefault(ctx context.Context, projectDir string) (string, error)

	// Describe returns the full resolution of a declared domain.
	Describe(ctx context.Context, name string) (*version.Resolution, error)

	// DescribeDefault returns the full resolution of the inferred domain.
	DescribeDefault(ctx context.Context, projectDir string) (*version.Resolution, error)

	// ResolveAll resolves every declared domain. Per-domain failures are
	// collected in the result rather than aborting the whole call.
	ResolveAll(ctx context.Context) []DomainResult

	// Domains lists the declared domains sorted by name.
	Domains() []version.Domain
}

// DomainResult records the outcome of resolving one domain within ResolveAll.
// Exactly one of Resolution and Err is set.
type DomainResult struct {
	Domain     version.Domain
	Resolution *version.Resolution
	Err        error
}
