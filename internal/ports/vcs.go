package ports

import (
	"context"

	"github.com/jsamuelsen11/domainversion/internal/domain/version"
)

// TagReader defines the client port for read-only repository queries.
// Implemented by the git adapter; called by the version service.
// The three queries are split so that history, which only changes with the
// snapshot, can be memoized while the working tree is inspected every time.
type TagReader interface {
	// Snapshot returns the current HEAD commit and a digest of all tag refs.
	Snapshot(ctx context.Context) (version.Snapshot, error)

	// Describe walks history from HEAD for the domain's path prefix and returns
	// the nearest matching tag, the commit distance, and a short hash.
	// The returned descriptor always has IsDirty false.
	// Returns domain.ErrUnknownDomain if no commit ever touched the prefix, and
	// domain.ErrSnapshotChanged if the repository no longer matches at.
	Describe(ctx context.Context, d version.Domain, at version.Snapshot) (version.Descriptor, error)

	// Dirty reports whether the working tree has uncommitted changes under
	// the domain's path prefix.
	Dirty(ctx context.Context, d version.Domain) (bool, error)
}
