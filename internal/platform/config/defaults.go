package config

const (
	defaultServerPort = 8080
	defaultAbbrev     = 7
	defaultMaxWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by the YAML file and env vars.
func defaults() map[string]any {
	return map[string]any{
		"repository.root": ".",

		"tags.initial_version": "0.0.0",
		"tags.abbrev":          defaultAbbrev,
		"tags.root_prefix":     "",

		"resolver.max_workers": defaultMaxWorkers,

		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "text",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "domainversion",
	}
}
