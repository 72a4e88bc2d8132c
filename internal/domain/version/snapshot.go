package version

import "fmt"

// Snapshot identifies a repository state: the HEAD commit and a digest of
// every tag ref. A new commit, a checkout, or any tag change yields a
// different snapshot.
type Snapshot struct {
	Head string
	Tags uint64
}

// Key returns a stable string form of the snapshot for use in memo keys.
func (s Snapshot) Key() string {
	return fmt.Sprintf("%s:%016x", s.Head, s.Tags)
}
