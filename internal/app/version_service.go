// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/domainversion/internal/app/fanout"
	"github.com/jsamuelsen11/domainversion/internal/app/memo"
	"github.com/jsamuelsen11/domainversion/internal/domain"
	"github.com/jsamuelsen11/domainversion/internal/domain/version"
	"github.com/jsamuelsen11/domainversion/internal/platform/logging"
	"github.com/jsamuelsen11/domainversion/internal/platform/telemetry"
	"github.com/jsamuelsen11/domainversion/internal/ports"
)

// Compile-time check that VersionService implements ports.VersionService.
var _ ports.VersionService = (*VersionService)(nil)

const (
	defaultMaxWorkers = 4

	// maxSnapshotAttempts bounds retries when HEAD or tags move mid-query.
	maxSnapshotAttempts = 3
)

// Option configures a VersionService.
type Option func(*VersionService)

// WithMaxWorkers bounds the number of domains ResolveAll resolves at once.
func WithMaxWorkers(n int) Option {
	return func(s *VersionService) {
		if n > 0 {
			s.maxWorkers = n
		}
	}
}

// WithMetrics records resolution and memo metrics. Nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *VersionService) {
		s.metrics = m
	}
}

// VersionService implements ports.VersionService. It is constructed once per
// repository configuration (declared domains and root location) and injected
// into call sites; there is no package-level state.
//
// History lookups are memoized per (domain, repository snapshot). The working
// tree is inspected on every call, so an edit between two calls is reflected
// even when HEAD and tags have not moved.
type VersionService struct {
	reader     ports.TagReader
	catalog    *version.Catalog
	root       string
	memo       *memo.Memo[version.Descriptor]
	maxWorkers int
	logger     *slog.Logger
	metrics    *telemetry.Metrics
	tracer     trace.Tracer
}

// NewVersionService creates a VersionService. root is the repository's
// top-level directory and is used to relativize project directories.
func NewVersionService(
	reader ports.TagReader, catalog *version.Catalog, root string, logger *slog.Logger, opts ...Option,
) *VersionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &VersionService{
		reader:     reader,
		catalog:    catalog,
		root:       root,
		memo:       memo.New[version.Descriptor](),
		maxWorkers: defaultMaxWorkers,
		logger:     logger,
		tracer:     telemetry.Tracer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the version string of a declared domain.
func (s *VersionService) Resolve(ctx context.Context, name string) (string, error) {
	res, err := s.Describe(ctx, name)
	if err != nil {
		return "", err
	}
	return res.Version, nil
}

// ResolveDefault returns the version string of the domain inferred from projectDir.
func (s *VersionService) ResolveDefault(ctx context.Context, projectDir string) (string, error) {
	res, err := s.DescribeDefault(ctx, projectDir)
	if err != nil {
		return "", err
	}
	return res.Version, nil
}

// Describe returns the full resolution of a declared domain. An undeclared
// name fails with *domain.UnknownDomainError; it never falls back to root.
func (s *VersionService) Describe(ctx context.Context, name string) (*version.Resolution, error) {
	d, ok := s.catalog.Lookup(name)
	if !ok {
		s.log(ctx).WarnContext(ctx, "domain not declared",
			slog.String("operation", "Describe"),
			slog.String("domain", name),
		)
		return nil, &domain.UnknownDomainError{Domain: name}
	}
	return s.resolve(ctx, d)
}

// DescribeDefault returns the full resolution of the domain whose path is the
// longest prefix of projectDir, or of the root domain when none matches.
func (s *VersionService) DescribeDefault(ctx context.Context, projectDir string) (*version.Resolution, error) {
	rel, err := s.relative(projectDir)
	if err != nil {
		return nil, err
	}

	d, err := s.catalog.Infer(rel)
	if err != nil {
		return nil, err
	}

	s.log(ctx).DebugContext(ctx, "inferred domain",
		slog.String("project_dir", projectDir),
		slog.String("domain", d.Name),
		slog.String("path", d.Path),
	)
	return s.resolve(ctx, d)
}

// ResolveAll resolves every declared domain with bounded concurrency.
// Results follow the catalog's name order.
func (s *VersionService) ResolveAll(ctx context.Context) []ports.DomainResult {
	domains := s.catalog.Domains()
	s.log(ctx).InfoContext(ctx, "resolving all domains", slog.Int("count", len(domains)))

	results := fanout.Run(ctx, s.maxWorkers, domains, s.resolve)

	out := make([]ports.DomainResult, len(domains))
	for i, r := range results {
		out[i] = ports.DomainResult{Domain: domains[i], Resolution: r.Value, Err: r.Err}
	}
	return out
}

// Domains lists the declared domains sorted by name.
func (s *VersionService) Domains() []version.Domain {
	return s.catalog.Domains()
}

func (s *VersionService) resolve(ctx context.Context, d version.Domain) (*version.Resolution, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "VersionService.resolve",
		trace.WithAttributes(
			attribute.String("domain.name", d.Name),
			attribute.String("domain.path", d.Path),
		),
	)
	defer span.End()

	res, err := s.resolveDomain(ctx, d)
	s.recordResolve(ctx, d, start, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("domain.version", res.Version))
	return res, nil
}

func (s *VersionService) resolveDomain(ctx context.Context, d version.Domain) (*version.Resolution, error) {
	desc, hit, err := s.history(ctx, d)
	if err != nil {
		return nil, err
	}

	dirty, err := s.reader.Dirty(ctx, d)
	if err != nil {
		err = withDomain(err, d)
		s.logError(ctx, "failed to read working tree status", d, err)
		return nil, err
	}
	desc.IsDirty = dirty

	if desc.Implicit {
		s.log(ctx).WarnContext(ctx, "no tag found, using implicit base version",
			slog.String("domain", d.Name),
			slog.String("path", d.Path),
			slog.Any("warning", &domain.NoTagFoundWarning{Domain: d.Name, Path: d.Path, Base: desc.BaseTag}),
		)
	}

	res := version.NewResolution(d, desc)
	s.log(ctx).DebugContext(ctx, "resolved domain version",
		slog.String("domain", d.Name),
		slog.String("path", d.Path),
		slog.String("version", res.Version),
		slog.Bool("memo_hit", hit),
	)
	return &res, nil
}

// history returns the memoized history of d at the current snapshot. When the
// repository moves between reading the snapshot and walking history, the walk
// is retried at a fresh snapshot, so an entry is only stored under the state
// it was computed from.
func (s *VersionService) history(ctx context.Context, d version.Domain) (version.Descriptor, bool, error) {
	var err error
	for attempt := 1; attempt <= maxSnapshotAttempts; attempt++ {
		var snap version.Snapshot
		snap, err = s.reader.Snapshot(ctx)
		if err != nil {
			err = withDomain(err, d)
			s.logError(ctx, "failed to read repository snapshot", d, err)
			return version.Descriptor{}, false, err
		}

		key := d.Name + "\x00" + d.Path + "\x00" + d.TagPrefix + "\x00" + snap.Key()
		var (
			desc version.Descriptor
			hit  bool
		)
		desc, hit, err = s.memo.GetOrLoad(ctx, key, func(ctx context.Context) (version.Descriptor, error) {
			return s.reader.Describe(ctx, d, snap)
		})
		s.recordMemo(ctx, hit)
		if !errors.Is(err, domain.ErrSnapshotChanged) {
			if err != nil {
				err = withDomain(err, d)
				s.logError(ctx, "failed to describe domain history", d, err)
			}
			return desc, hit, err
		}

		s.log(ctx).DebugContext(ctx, "repository changed while reading history",
			slog.String("domain", d.Name),
			slog.Int("attempt", attempt),
		)
	}

	err = withDomain(err, d)
	s.logError(ctx, "repository kept changing while reading history", d, err)
	return version.Descriptor{}, false, err
}

// relative converts projectDir to a slash-separated path relative to the
// repository root. Relative inputs are taken as already root-relative.
func (s *VersionService) relative(projectDir string) (string, error) {
	if projectDir == "" || !filepath.IsAbs(projectDir) {
		return filepath.ToSlash(projectDir), nil
	}

	rel, err := filepath.Rel(s.root, projectDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &domain.ValidationError{Fields: map[string]string{
			"project_dir": "must be inside the repository root " + s.root,
		}}
	}
	return filepath.ToSlash(rel), nil
}

// log returns the request-scoped logger from ctx, if any.
func (s *VersionService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func (s *VersionService) logError(ctx context.Context, msg string, d version.Domain, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrUnknownDomain) {
		level = slog.LevelWarn
	}
	s.log(ctx).Log(ctx, level, msg,
		slog.String("operation", "Resolve"),
		slog.String("domain", d.Name),
		slog.String("path", d.Path),
		slog.Any("error", err),
	)
}

// recordResolve records resolution duration and count. Safe with nil metrics.
func (s *VersionService) recordResolve(ctx context.Context, d version.Domain, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, domain.ErrUnknownDomain):
		result = "unknown_domain"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDomain.String(d.Name),
		telemetry.AttrResult.String(result),
	)
	s.metrics.ResolveDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.ResolveTotal.Add(ctx, 1, attrs)
}

func (s *VersionService) recordMemo(ctx context.Context, hit bool) {
	if s.metrics == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	s.metrics.MemoLookups.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

// withDomain fills in the domain and path of a VCS error raised by a query
// that is not domain-scoped, such as reading HEAD for the snapshot.
func withDomain(err error, d version.Domain) error {
	var qerr *domain.VCSQueryError
	if errors.As(err, &qerr) && qerr.Domain == "" {
		scoped := *qerr
		scoped.Domain = d.Name
		scoped.Path = d.Path
		return &scoped
	}
	return err
}
