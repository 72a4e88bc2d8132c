package app

import (
	"context"

	"github.com/jsamuelsen11/domainversion/internal/ports"
)

// Convention binds a VersionService to one project directory. It offers the
// two call shapes build scripts use: the version of the project's own domain,
// and the version of a named domain.
//
//	conv := app.NewConvention(svc, "/repo/libs/a/tools")
//	v, err := conv.DomainVersion(ctx)          // inferred: domain of libs/a
//	v, err = conv.DomainVersionOf(ctx, "b")    // named
type Convention struct {
	svc        ports.VersionService
	projectDir string
}

// NewConvention creates a Convention for the project at projectDir.
func NewConvention(svc ports.VersionService, projectDir string) *Convention {
	return &Convention{svc: svc, projectDir: projectDir}
}

// DomainVersion returns the version of the domain inferred from the project
// directory.
func (c *Convention) DomainVersion(ctx context.Context) (string, error) {
	return c.svc.ResolveDefault(ctx, c.projectDir)
}

// DomainVersionOf returns the version of the named domain. An empty name
// behaves like DomainVersion.
func (c *Convention) DomainVersionOf(ctx context.Context, name string) (string, error) {
	if name == "" {
		return c.DomainVersion(ctx)
	}
	return c.svc.Resolve(ctx, name)
}
