// Package gitrepo implements the tag reader port on top of go-git. It reads
// tags, history, and working tree status of a local repository without
// invoking the git binary and without mutating anything.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/jsamuelsen11/domainversion/internal/domain"
	"github.com/jsamuelsen11/domainversion/internal/domain/version"
	"github.com/jsamuelsen11/domainversion/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TagReader     = (*Repository)(nil)
	_ ports.HealthChecker = (*Repository)(nil)
)

const (
	defaultAbbrev         = 7
	minAbbrev             = 4
	maxAbbrev             = 40
	defaultInitialVersion = "0.0.0"
)

// Option configures a Repository.
type Option func(*Repository)

// WithAbbrev sets the number of hex digits kept in short commit hashes.
// Values outside 4..40 are clamped.
func WithAbbrev(n int) Option {
	return func(r *Repository) {
		r.abbrev = min(max(n, minAbbrev), maxAbbrev)
	}
}

// WithInitialVersion sets the version appended to a domain's tag prefix when
// the domain has no matching tag yet.
func WithInitialVersion(v string) Option {
	return func(r *Repository) {
		if v != "" {
			r.initialVersion = v
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Repository reads version metadata from a git repository.
// go-git repositories are not documented as safe for concurrent use, so every
// query holds mu.
type Repository struct {
	mu             sync.Mutex
	repo           *git.Repository
	root           string
	abbrev         int
	initialVersion string
	logger         *slog.Logger
}

// Open opens the repository containing dir. Parent directories are searched
// for the .git directory, so dir may be any location inside the work tree.
func Open(dir string, opts ...Option) (*Repository, error) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &domain.VCSQueryError{Path: dir, Op: "open", Err: err}
	}

	r := &Repository{
		repo:           repo,
		root:           dir,
		abbrev:         defaultAbbrev,
		initialVersion: defaultInitialVersion,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	if wt, err := repo.Worktree(); err == nil {
		r.root = wt.Filesystem.Root()
	}

	return r, nil
}

// Root returns the top-level directory of the work tree, or the directory
// passed to Open for bare repositories.
func (r *Repository) Root() string {
	return r.root
}

// Snapshot returns the HEAD commit and an xxhash digest of every tag ref,
// sorted by ref name.
func (r *Repository) Snapshot(_ context.Context) (version.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, err := r.readState()
	if err != nil {
		return version.Snapshot{}, err
	}
	return st.snapshot, nil
}

// Read returns the complete descriptor for d at the current snapshot:
// history from Describe and the working tree state from Dirty.
func (r *Repository) Read(ctx context.Context, d version.Domain) (version.Descriptor, error) {
	snap, err := r.Snapshot(ctx)
	if err != nil {
		return version.Descriptor{}, queryError(d, "snapshot", err)
	}
	desc, err := r.Describe(ctx, d, snap)
	if err != nil {
		return version.Descriptor{}, err
	}
	dirty, err := r.Dirty(ctx, d)
	if err != nil {
		return version.Descriptor{}, err
	}
	desc.IsDirty = dirty
	return desc, nil
}

// state is HEAD and the tag refs as read together, and the snapshot they
// form.
type state struct {
	head     plumbing.Hash
	tags     []*plumbing.Reference
	snapshot version.Snapshot
}

// readState reads HEAD and every tag ref once. Callers hold mu.
func (r *Repository) readState() (state, error) {
	head, err := r.repo.Head()
	if err != nil {
		return state{}, &domain.VCSQueryError{Op: "head", Err: err}
	}

	iter, err := r.repo.Tags()
	if err != nil {
		return state{}, &domain.VCSQueryError{Op: "tags", Err: err}
	}
	var tags []*plumbing.Reference
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref)
		return nil
	})
	if err != nil {
		return state{}, &domain.VCSQueryError{Op: "tags", Err: err}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name() < tags[j].Name() })

	digest := xxhash.New()
	for _, ref := range tags {
		_, _ = digest.WriteString(ref.Name().String() + " " + ref.Hash().String() + "\n")
	}

	return state{
		head:     head.Hash(),
		tags:     tags,
		snapshot: version.Snapshot{Head: head.Hash().String(), Tags: digest.Sum64()},
	}, nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "git-repository"
}

// HealthCheck reports an error when HEAD cannot be resolved, e.g. for an
// empty repository or a corrupted ref store.
func (r *Repository) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.repo.Head(); err != nil {
		return fmt.Errorf("resolving HEAD in %s: %w", r.root, err)
	}
	return nil
}

func (r *Repository) shorten(h plumbing.Hash) string {
	s := h.String()
	if len(s) <= r.abbrev {
		return s
	}
	return s[:r.abbrev]
}

func queryError(d version.Domain, op string, err error) error {
	var qerr *domain.VCSQueryError
	if errors.As(err, &qerr) {
		return err
	}
	return &domain.VCSQueryError{Domain: d.Name, Path: d.Path, Op: op, Err: err}
}
