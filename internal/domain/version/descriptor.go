package version

import (
	"strconv"
	"strings"
)

// DirtySuffix is appended to versions built from a modified working tree.
const DirtySuffix = ".dirty"

// Descriptor is the structured result of inspecting a domain's history.
// Implicit is set when no tag matched and BaseTag is the implicit base.
type Descriptor struct {
	BaseTag         string `json:"base_tag"`
	CommitsSinceTag int    `json:"commits_since_tag"`
	CommitHash      string `json:"commit_hash"`
	IsDirty         bool   `json:"dirty"`
	Implicit        bool   `json:"implicit"`
}

// String formats the descriptor as a version:
//
//	libs-a-1.0.0                 tagged commit, clean tree
//	libs-a-1.0.0+3.g1a2b3c4      three commits after the tag
//	libs-a-1.0.0+3.g1a2b3c4.dirty
//	libs-a-1.0.0+0.g1a2b3c4.dirty
func (d Descriptor) String() string {
	if d.CommitsSinceTag == 0 && !d.IsDirty {
		return d.BaseTag
	}

	var b strings.Builder
	b.WriteString(d.BaseTag)
	b.WriteByte('+')
	b.WriteString(strconv.Itoa(d.CommitsSinceTag))
	b.WriteString(".g")
	b.WriteString(d.CommitHash)
	if d.IsDirty {
		b.WriteString(DirtySuffix)
	}
	return b.String()
}

// Resolution pairs a domain with its descriptor and formatted version.
type Resolution struct {
	Domain     Domain
	Descriptor Descriptor
	Version    string
}

// NewResolution formats d for dom.
func NewResolution(dom Domain, d Descriptor) Resolution {
	return Resolution{Domain: dom, Descriptor: d, Version: d.String()}
}
