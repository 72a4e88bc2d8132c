package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"golang.org/x/mod/semver"

	"github.com/jsamuelsen11/domainversion/internal/domain"
	"github.com/jsamuelsen11/domainversion/internal/domain/version"
)

// errNotCommit marks annotated tags that do not point at a commit.
var errNotCommit = errors.New("tag does not point at a commit")

// taggedCommit is the preferred domain tag on one commit.
type taggedCommit struct {
	name    string
	version string
}

// Describe finds the nearest domain tag reachable from HEAD and counts the
// commits since then that change the domain's path prefix. Without a tag the
// base is TagPrefix+initialVersion and every commit changing the prefix
// counts. A prefix no commit has ever changed is an unknown domain.
//
// at is the snapshot the caller keys its result by. When HEAD or the tags no
// longer match it, Describe fails with domain.ErrSnapshotChanged instead of
// describing a different state.
func (r *Repository) Describe(ctx context.Context, d version.Domain, at version.Snapshot) (version.Descriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, err := r.readState()
	if err != nil {
		return version.Descriptor{}, queryError(d, "snapshot", err)
	}
	if st.snapshot != at {
		return version.Descriptor{}, queryError(d, "snapshot", domain.ErrSnapshotChanged)
	}

	tags, err := r.domainTags(d, st.tags)
	if err != nil {
		return version.Descriptor{}, queryError(d, "tags", err)
	}

	base, tag, err := r.nearestTagged(ctx, st.head, tags)
	if err != nil {
		return version.Descriptor{}, queryError(d, "log", err)
	}

	var below map[plumbing.Hash]struct{}
	if !base.IsZero() {
		below, err = r.ancestors(ctx, base)
		if err != nil {
			return version.Descriptor{}, queryError(d, "log", err)
		}
	}

	total, since, latest, err := r.countTouching(ctx, st.head, d, below)
	if err != nil {
		return version.Descriptor{}, queryError(d, "log", err)
	}
	if total == 0 {
		return version.Descriptor{}, &domain.UnknownDomainError{Domain: d.Name, Path: d.Path}
	}

	desc := version.Descriptor{CommitsSinceTag: since}
	if base.IsZero() {
		desc.BaseTag = d.TagPrefix + r.initialVersion
		desc.Implicit = true
	} else {
		desc.BaseTag = tag
	}
	if since > 0 || base.IsZero() {
		desc.CommitHash = r.shorten(latest)
	} else {
		desc.CommitHash = r.shorten(base)
	}

	r.logger.Debug("described domain",
		slog.String("domain", d.Name),
		slog.String("path", d.Path),
		slog.String("base_tag", desc.BaseTag),
		slog.Int("commits_since_tag", since),
		slog.Int("commits_total", total),
	)
	return desc, nil
}

// domainTags maps each tagged commit to the highest-versioned tag of d on it.
// Ties on version (e.g. "1.0.0" and "v1.0.0") go to the lexically smaller name.
func (r *Repository) domainTags(d version.Domain, refs []*plumbing.Reference) (map[plumbing.Hash]taggedCommit, error) {
	out := make(map[plumbing.Hash]taggedCommit)
	for _, ref := range refs {
		name := ref.Name().Short()
		v, ok := d.TagVersion(name)
		if !ok {
			continue
		}

		target, err := r.peel(ref.Hash())
		if errors.Is(err, errNotCommit) {
			r.logger.Debug("skipping tag", slog.String("tag", name), slog.Any("error", err))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolving tag %s: %w", name, err)
		}

		cur, seen := out[target]
		if !seen || semver.Compare(v, cur.version) > 0 ||
			(semver.Compare(v, cur.version) == 0 && name < cur.name) {
			out[target] = taggedCommit{name: name, version: v}
		}
	}
	return out, nil
}

// peel resolves a tag ref to the commit it names. Lightweight tags point at
// the commit directly; annotated tags point at a tag object.
func (r *Repository) peel(h plumbing.Hash) (plumbing.Hash, error) {
	tag, err := r.repo.TagObject(h)
	switch {
	case err == nil:
		c, err := tag.Commit()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("%w: %w", errNotCommit, err)
		}
		return c.Hash, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		return h, nil
	default:
		return plumbing.ZeroHash, err
	}
}

// nearestTagged walks history from HEAD, newest committer time first, and
// returns the first commit carrying a domain tag.
func (r *Repository) nearestTagged(
	ctx context.Context, from plumbing.Hash, tags map[plumbing.Hash]taggedCommit,
) (plumbing.Hash, string, error) {
	if len(tags) == 0 {
		return plumbing.ZeroHash, "", nil
	}

	iter, err := r.repo.Log(&git.LogOptions{From: from, Order: git.LogOrderCommitterTime})
	if err != nil {
		return plumbing.ZeroHash, "", err
	}
	defer iter.Close()

	var (
		found plumbing.Hash
		name  string
	)
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if t, ok := tags[c.Hash]; ok {
			found, name = c.Hash, t.name
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return plumbing.ZeroHash, "", err
	}
	return found, name, nil
}

// ancestors returns every commit reachable from base, base included.
func (r *Repository) ancestors(ctx context.Context, base plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	iter, err := r.repo.Log(&git.LogOptions{From: base})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

// countTouching walks commits reachable from HEAD that change d's path. It
// returns the total, the number not reachable from the base (those absent
// from below), and the newest such commit. Every commit changes the root.
func (r *Repository) countTouching(
	ctx context.Context, from plumbing.Hash, d version.Domain, below map[plumbing.Hash]struct{},
) (total, since int, latest plumbing.Hash, err error) {
	iter, err := r.repo.Log(&git.LogOptions{From: from, Order: git.LogOrderCommitterTime})
	if err != nil {
		return 0, 0, plumbing.ZeroHash, err
	}
	defer iter.Close()

	entries := newPathEntries(r.repo, d.Path)
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsRoot() {
			changed, err := entries.changedBy(c)
			if err != nil {
				return err
			}
			if !changed {
				return nil
			}
		}

		total++
		if _, old := below[c.Hash]; old {
			return nil
		}
		if since == 0 {
			latest = c.Hash
		}
		since++
		return nil
	})
	if err != nil {
		return 0, 0, plumbing.ZeroHash, err
	}
	return total, since, latest, nil
}

// pathEntries caches the object hash stored at one path in each commit's
// tree. The zero hash stands for a missing path.
type pathEntries struct {
	repo     *git.Repository
	path     string
	byCommit map[plumbing.Hash]plumbing.Hash
}

func newPathEntries(repo *git.Repository, p string) *pathEntries {
	return &pathEntries{repo: repo, path: p, byCommit: make(map[plumbing.Hash]plumbing.Hash)}
}

// changedBy reports whether c changes the path. A root commit changes it when
// the path exists. Any other commit must differ from every parent, so a merge
// that takes the path as-is from one side does not count, and neither do
// commits on a merged branch that left the path alone.
func (e *pathEntries) changedBy(c *object.Commit) (bool, error) {
	own, err := e.entry(c)
	if err != nil {
		return false, err
	}
	if c.NumParents() == 0 {
		return !own.IsZero(), nil
	}

	for _, ph := range c.ParentHashes {
		parent, err := e.repo.CommitObject(ph)
		if err != nil {
			return false, fmt.Errorf("loading parent %s of %s: %w", ph, c.Hash, err)
		}
		prev, err := e.entry(parent)
		if err != nil {
			return false, err
		}
		if prev == own {
			return false, nil
		}
	}
	return true, nil
}

func (e *pathEntries) entry(c *object.Commit) (plumbing.Hash, error) {
	if h, ok := e.byCommit[c.Hash]; ok {
		return h, nil
	}

	tree, err := c.Tree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("reading tree of %s: %w", c.Hash, err)
	}

	var h plumbing.Hash
	te, err := tree.FindEntry(e.path)
	switch {
	case err == nil:
		h = te.Hash
	case errors.Is(err, object.ErrEntryNotFound),
		errors.Is(err, object.ErrDirectoryNotFound),
		errors.Is(err, plumbing.ErrObjectNotFound):
		// A parent component is missing or is a file.
	default:
		return plumbing.ZeroHash, fmt.Errorf("looking up %s in %s: %w", e.path, c.Hash, err)
	}

	e.byCommit[c.Hash] = h
	return h, nil
}
