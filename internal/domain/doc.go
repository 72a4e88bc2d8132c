// Package domain contains shared domain types used across entity sub-packages.
// Versioning types live in domain/version. This root package holds sentinel
// errors and the typed errors that carry the domain name and path prefix
// involved in a failure.
package domain
