// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (CLI commands, HTTP handlers). Client ports are implemented by
// outbound adapters (the git tag reader) and called by the application layer.
package ports
