// Package version holds the versioning model: declared domains, the catalog
// used to look them up, repository snapshots, and the descriptor that is
// formatted into a version string.
package version

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/jsamuelsen11/domainversion/internal/domain"
)

const msgRequired = "is required"

// Domain is a named subtree of the repository that is versioned on its own.
// Path is slash-separated and relative to the repository root; the empty
// string denotes the root itself.
type Domain struct {
	Name      string
	Path      string
	TagPrefix string
}

// NewDomain builds a Domain with a cleaned path. When tagPrefix is empty the
// prefix is derived from the path: "libs/a" becomes "libs-a-".
func NewDomain(name, p, tagPrefix string) (Domain, error) {
	clean, err := CleanPath(p)
	if err != nil {
		return Domain{}, &domain.ValidationError{Fields: map[string]string{"path": err.Error()}}
	}
	d := Domain{
		Name:      strings.TrimSpace(name),
		Path:      clean,
		TagPrefix: tagPrefix,
	}
	if d.TagPrefix == "" {
		d.TagPrefix = DefaultTagPrefix(clean)
	}
	if err := d.Validate(); err != nil {
		return Domain{}, err
	}
	return d, nil
}

// Validate checks that the domain has a name and a relative, clean path.
func (d Domain) Validate() error {
	fields := make(map[string]string)

	if d.Name == "" {
		fields["name"] = msgRequired
	}
	if clean, err := CleanPath(d.Path); err != nil {
		fields["path"] = err.Error()
	} else if clean != d.Path {
		fields["path"] = fmt.Sprintf("must be clean, want %q", clean)
	}
	if strings.ContainsAny(d.TagPrefix, " \t\n~^:?*[\\") {
		fields["tag_prefix"] = "contains characters not allowed in a tag name"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsRoot reports whether the domain covers the whole repository.
func (d Domain) IsRoot() bool {
	return d.Path == ""
}

// Contains reports whether the slash-separated repository path p lies under
// the domain's path prefix.
func (d Domain) Contains(p string) bool {
	if d.Path == "" {
		return true
	}
	return p == d.Path || strings.HasPrefix(p, d.Path+"/")
}

// TagVersion returns the canonical semver ("v1.2.3") carried by tag when the
// tag follows this domain's naming convention.
func (d Domain) TagVersion(tag string) (string, bool) {
	rest, ok := strings.CutPrefix(tag, d.TagPrefix)
	if !ok || rest == "" {
		return "", false
	}
	v := rest
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", false
	}
	// semver accepts "v1" and "v1.2"; tags must spell out all three parts.
	core := v
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	if strings.Count(core, ".") != 2 {
		return "", false
	}
	return v, true
}

// MatchesTag reports whether tag belongs to this domain.
func (d Domain) MatchesTag(tag string) bool {
	_, ok := d.TagVersion(tag)
	return ok
}

// DefaultTagPrefix derives a tag prefix from a domain path.
func DefaultTagPrefix(p string) string {
	if p == "" {
		return ""
	}
	return strings.ReplaceAll(p, "/", "-") + "-"
}

// CleanPath normalizes a repository-relative path. "." and "" both denote the
// root and clean to "". Absolute paths and paths escaping the root are rejected.
func CleanPath(p string) (string, error) {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if strings.HasPrefix(p, "/") {
		return "", errAbsolutePath
	}
	clean := path.Clean(p)
	switch {
	case clean == ".":
		return "", nil
	case clean == "..", strings.HasPrefix(clean, "../"):
		return "", errEscapesRoot
	}
	return clean, nil
}
