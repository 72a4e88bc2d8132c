package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/jsamuelsen11/domainversion/internal/domain"
	"github.com/jsamuelsen11/domainversion/internal/domain/version"
)

const (
	minAbbrev = 4
	maxAbbrev = 40
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects messages keyed by config key, e.g. "server.port" or
// "domains[2].path".
type problems map[string]string

func (p problems) addf(key, format string, args ...any) {
	p[key] = fmt.Sprintf(format, args...)
}

func (p problems) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		p.addf(key, "must be one of %s, got %q", strings.Join(allowed, ", "), got)
	}
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: p}
}

// Validate checks every setting and reports all problems at once as a
// *domain.ValidationError keyed by config key.
func (c *Config) Validate() error {
	p := problems{}

	if strings.TrimSpace(c.Repository.Root) == "" {
		p.addf("repository.root", "must not be empty")
	}

	c.Tags.validate(p)

	if _, err := c.Catalog(); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for key, msg := range verr.Fields {
			p[key] = msg
		}
	}

	if c.Resolver.MaxWorkers < 1 {
		p.addf("resolver.max_workers", "must be at least 1, got %d", c.Resolver.MaxWorkers)
	}

	c.Server.validate(p)

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, exporters)
		if c.Telemetry.Exporter == "otlp" && c.Telemetry.Endpoint == "" {
			p.addf("telemetry.endpoint", "is required with the otlp exporter")
		}
	}

	return p.err()
}

// Catalog builds the domain catalog from the declared domains. Problems are
// reported under "domains[<index>].<field>".
func (c *Config) Catalog() (*version.Catalog, error) {
	domains := make([]version.Domain, 0, len(c.Domains))
	for _, dc := range c.Domains {
		d, err := version.NewDomain(dc.Name, dc.Path, dc.TagPrefix)
		if err != nil {
			// Keep the entry as written so NewCatalog reports it at its index.
			d = version.Domain{Name: strings.TrimSpace(dc.Name), Path: dc.Path, TagPrefix: dc.TagPrefix}
			if d.TagPrefix == "" {
				d.TagPrefix = version.DefaultTagPrefix(dc.Path)
			}
		}
		domains = append(domains, d)
	}
	return version.NewCatalog(domains, c.Tags.RootPrefix)
}

func (t *TagsConfig) validate(p problems) {
	v := t.InitialVersion
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if t.InitialVersion == "" || !semver.IsValid(v) || semver.Canonical(v) != v {
		p.addf("tags.initial_version", "must be a full semantic version, got %q", t.InitialVersion)
	}
	if t.Abbrev < minAbbrev || t.Abbrev > maxAbbrev {
		p.addf("tags.abbrev", "must be between %d and %d, got %d", minAbbrev, maxAbbrev, t.Abbrev)
	}
	if strings.ContainsAny(t.RootPrefix, " \t\n~^:?*[\\") {
		p.addf("tags.root_prefix", "contains characters not allowed in a tag name")
	}
}

func (s *ServerConfig) validate(p problems) {
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port", "must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 {
		p.addf("server.read_timeout", "must be positive")
	}
	if s.WriteTimeout <= 0 {
		p.addf("server.write_timeout", "must be positive")
	}
}
