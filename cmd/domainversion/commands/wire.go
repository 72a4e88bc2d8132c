package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/domainversion/internal/adapters/http"
	"github.com/jsamuelsen11/domainversion/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/domainversion/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/domainversion/internal/adapters/vcs/gitrepo"
	"github.com/jsamuelsen11/domainversion/internal/app"
	"github.com/jsamuelsen11/domainversion/internal/domain/version"
	"github.com/jsamuelsen11/domainversion/internal/platform/config"
	"github.com/jsamuelsen11/domainversion/internal/platform/health"
	"github.com/jsamuelsen11/domainversion/internal/platform/logging"
	"github.com/jsamuelsen11/domainversion/internal/platform/telemetry"
	"github.com/jsamuelsen11/domainversion/internal/ports"
)

// container holds the wired dependency graph for one command invocation.
// Services are constructed lazily on first Invoke, so `list` never opens the
// repository and only `serve` builds the HTTP stack.
type container struct {
	injector *do.RootScope
	cfg      *config.Config
	logger   *slog.Logger
	otel     *telemetry.Providers
}

func newContainer(ctx context.Context, opts *rootOptions, stderr io.Writer) (*container, error) {
	cfg, err := config.Load(config.WithConfigFile(opts.configFile))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)

	otel := &telemetry.Providers{}
	if cfg.Telemetry.Enabled {
		otel, err = telemetry.Start(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("starting telemetry: %w", err)
		}
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(injector, cfg, logger)

	return &container{injector: injector, cfg: cfg, logger: logger, otel: otel}, nil
}

// Close flushes telemetry. Errors are logged, not returned, so a failing
// exporter never changes the exit status of a successful resolution.
func (c *container) Close(ctx context.Context) {
	if err := c.otel.Shutdown(ctx); err != nil {
		c.logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func (c *container) versionService() (ports.VersionService, error) {
	return do.Invoke[ports.VersionService](c.injector)
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*gitrepo.Repository, error) {
		return gitrepo.Open(cfg.Repository.Root,
			gitrepo.WithAbbrev(cfg.Tags.Abbrev),
			gitrepo.WithInitialVersion(cfg.Tags.InitialVersion),
			gitrepo.WithLogger(logger),
		)
	})

	do.Provide(injector, func(i do.Injector) (ports.TagReader, error) {
		return do.Invoke[*gitrepo.Repository](i)
	})

	do.Provide(injector, func(_ do.Injector) (*version.Catalog, error) {
		return cfg.Catalog()
	})

	do.Provide(injector, func(i do.Injector) (ports.VersionService, error) {
		repo, err := do.Invoke[*gitrepo.Repository](i)
		if err != nil {
			return nil, err
		}
		reader := do.MustInvoke[ports.TagReader](i)
		catalog := do.MustInvoke[*version.Catalog](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewVersionService(reader, catalog, repo.Root(), logger,
			app.WithMaxWorkers(cfg.Resolver.MaxWorkers),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		repo, err := do.Invoke[*gitrepo.Repository](i)
		if err != nil {
			return nil, err
		}
		registry := health.New(health.WithCheckTimeout(cfg.Server.ReadTimeout))
		registry.Register(repo)
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.VersionHandler, error) {
		svc, err := do.Invoke[ports.VersionService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewVersionHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry, err := do.Invoke[ports.HealthRegistry](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		versionH, err := do.Invoke[*handlers.VersionHandler](i)
		if err != nil {
			return nil, err
		}
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(versionH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
