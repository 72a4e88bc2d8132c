package version

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsamuelsen11/domainversion/internal/domain"
)

// ImplicitRootName names the domain used when inference matches nothing and
// no domain is declared at the repository root.
const ImplicitRootName = "root"

var (
	errAbsolutePath = errors.New("must be relative to the repository root")
	errEscapesRoot  = errors.New("must not escape the repository root")
)

// Catalog is the immutable set of domains declared for one repository.
// Domains are kept sorted by path so that inference can binary search each
// ancestor of a location instead of scanning every domain.
type Catalog struct {
	byName map[string]Domain
	byPath []Domain
	root   Domain
}

// NewCatalog validates the declared domains and builds the lookup structures.
// Names and paths must be unique, and ImplicitRootName may only be declared
// at path "". rootTagPrefix is used for the implicit root
// domain when none is declared at path "".
func NewCatalog(domains []Domain, rootTagPrefix string) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]Domain, len(domains)),
		byPath: make([]Domain, 0, len(domains)),
		root:   Domain{Name: ImplicitRootName, TagPrefix: rootTagPrefix},
	}

	fields := make(map[string]string)
	paths := make(map[string]string, len(domains))
	for i, d := range domains {
		key := fmt.Sprintf("domains[%d]", i)
		if err := d.Validate(); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				for f, msg := range verr.Fields {
					fields[key+"."+f] = msg
				}
				continue
			}
			return nil, err
		}
		if d.Name == ImplicitRootName && !d.IsRoot() {
			fields[key+".name"] = fmt.Sprintf("name %q is reserved for the repository root domain", d.Name)
			continue
		}
		if _, dup := c.byName[d.Name]; dup {
			fields[key+".name"] = fmt.Sprintf("duplicate domain name %q", d.Name)
			continue
		}
		if other, dup := paths[d.Path]; dup {
			fields[key+".path"] = fmt.Sprintf("path %q already declared by %q", d.Path, other)
			continue
		}
		paths[d.Path] = d.Name
		c.byName[d.Name] = d
		c.byPath = append(c.byPath, d)
		if d.IsRoot() {
			c.root = d
		}
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	sort.Slice(c.byPath, func(i, j int) bool { return c.byPath[i].Path < c.byPath[j].Path })
	return c, nil
}

// Lookup returns the declared domain with the given name.
func (c *Catalog) Lookup(name string) (Domain, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Root returns the domain covering the repository root: the declared one if
// any, otherwise the implicit default.
func (c *Catalog) Root() Domain {
	return c.root
}

// Infer returns the declared domain whose path is the longest prefix of rel,
// a location relative to the repository root. With no match it returns Root.
func (c *Catalog) Infer(rel string) (Domain, error) {
	p, err := CleanPath(rel)
	if err != nil {
		return Domain{}, &domain.ValidationError{Fields: map[string]string{"path": err.Error()}}
	}
	for {
		if d, ok := c.findPath(p); ok {
			return d, nil
		}
		if p == "" {
			return c.root, nil
		}
		if i := strings.LastIndexByte(p, '/'); i >= 0 {
			p = p[:i]
		} else {
			p = ""
		}
	}
}

// Domains returns the declared domains sorted by name.
func (c *Catalog) Domains() []Domain {
	out := make([]Domain, len(c.byPath))
	copy(out, c.byPath)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of declared domains.
func (c *Catalog) Len() int {
	return len(c.byPath)
}

func (c *Catalog) findPath(p string) (Domain, bool) {
	i := sort.Search(len(c.byPath), func(i int) bool { return c.byPath[i].Path >= p })
	if i < len(c.byPath) && c.byPath[i].Path == p {
		return c.byPath[i], true
	}
	return Domain{}, false
}
