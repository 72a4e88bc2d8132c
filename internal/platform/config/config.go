// Package config provides configuration loading and validation for
// domainversion. Configuration is layered: built-in defaults, then an
// optional YAML file, then DOMAINVERSION_ environment variables.
package config

import "time"

// Config holds all configuration for the resolver, the CLI and the HTTP server.
type Config struct {
	Repository RepositoryConfig `koanf:"repository"`
	Tags       TagsConfig       `koanf:"tags"`
	Domains    []DomainConfig   `koanf:"domains"`
	Resolver   ResolverConfig   `koanf:"resolver"`
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// RepositoryConfig locates the repository. Root may be any directory inside
// the work tree; the enclosing .git directory is discovered.
type RepositoryConfig struct {
	Root string `koanf:"root"`
}

// TagsConfig holds the tag naming convention.
type TagsConfig struct {
	// InitialVersion is appended to a domain's tag prefix when no tag exists.
	InitialVersion string `koanf:"initial_version"`
	// Abbrev is the number of hex digits in short commit hashes.
	Abbrev int `koanf:"abbrev"`
	// RootPrefix is the tag prefix of the implicit root domain.
	RootPrefix string `koanf:"root_prefix"`
}

// DomainConfig declares one domain. An empty TagPrefix is derived from Path.
type DomainConfig struct {
	Name      string `koanf:"name"`
	Path      string `koanf:"path"`
	TagPrefix string `koanf:"tag_prefix"`
}

// ResolverConfig tunes bulk resolution.
type ResolverConfig struct {
	MaxWorkers int `koanf:"max_workers"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
