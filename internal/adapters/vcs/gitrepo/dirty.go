package gitrepo

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v5"

	"github.com/jsamuelsen11/domainversion/internal/domain/version"
)

// Dirty reports whether any file under d's path prefix is modified, staged,
// deleted, or untracked and not ignored. Bare repositories have no working
// tree and are never dirty.
func (r *Repository) Dirty(ctx context.Context, d version.Domain) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, queryError(d, "status", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	wt, err := r.repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return false, nil
	}
	if err != nil {
		return false, queryError(d, "worktree", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, queryError(d, "status", err)
	}

	for p, fs := range status {
		if !d.Contains(p) {
			continue
		}
		if fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified {
			return true, nil
		}
	}
	return false, nil
}
