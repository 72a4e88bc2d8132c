package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrUnknownDomain = errors.New("unknown domain")
	ErrValidation    = errors.New("validation error")
	ErrVCSQuery      = errors.New("vcs query failed")

	// ErrSnapshotChanged reports that HEAD or a tag moved between reading a
	// snapshot and querying history at it. Retrying with a fresh snapshot
	// is safe.
	ErrSnapshotChanged = errors.New("repository changed during query")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UnknownDomainError reports a domain that is not declared, or whose path
// prefix has never been touched by a commit. Path is empty when the name
// itself could not be found.
type UnknownDomainError struct {
	Domain string
	Path   string
}

func (e *UnknownDomainError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %q is not declared", ErrUnknownDomain.Error(), e.Domain)
	}
	return fmt.Sprintf("%s: %q (path %q) has no committed files", ErrUnknownDomain.Error(), e.Domain, e.Path)
}

func (e *UnknownDomainError) Unwrap() error {
	return ErrUnknownDomain
}

// VCSQueryError wraps a failure of the underlying repository access.
// Op names the query that failed (e.g. "open", "head", "log").
type VCSQueryError struct {
	Domain string
	Path   string
	Op     string
	Err    error
}

func (e *VCSQueryError) Error() string {
	return fmt.Sprintf("%s: %s (domain %q, path %q): %v", ErrVCSQuery.Error(), e.Op, e.Domain, e.Path, e.Err)
}

func (e *VCSQueryError) Unwrap() []error {
	return []error{ErrVCSQuery, e.Err}
}

// NoTagFoundWarning is not a failure. It describes a domain that has no
// matching tag yet and was versioned from an implicit base instead.
type NoTagFoundWarning struct {
	Domain string
	Path   string
	Base   string
}

func (w *NoTagFoundWarning) Error() string {
	return fmt.Sprintf("no tag found for domain %q (path %q), using implicit base %q", w.Domain, w.Path, w.Base)
}
