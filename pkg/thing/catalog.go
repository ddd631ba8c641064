package thing

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateID marks two definitions sharing an ID. The collision is not
// fatal: the file-defined record wins and the other is shadowed.
var ErrDuplicateID = errors.New("duplicate thing id")

// Provider is the registration contract for natively defined things. A host
// implements it to declare thing types with the same identity rules as
// file-defined ones.
type Provider interface {
	HardcodedThings() []Definition
}

// Conflict records a shadowed definition detected during a reload.
type Conflict struct {
	ID      uint16
	Kept    Definition
	Dropped Definition
}

// Err returns the conflict as an ErrDuplicateID error.
func (c Conflict) Err() error {
	return fmt.Errorf("%w: %d kept %q, shadowed %q", ErrDuplicateID, c.ID, c.Kept.Name, c.Dropped.Name)
}

// Catalog is the merged namespace of thing definitions keyed by ID. It is
// populated by Reload, which rebuilds the whole namespace and swaps it in
// atomically: readers observe either the complete old set or the complete
// new one.
type Catalog struct {
	defs map[uint16]Definition
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{defs: make(map[uint16]Definition)}
}

// Lookup returns the definition for id. The second return is false for
// unknown IDs, including stale ones left behind by a reload.
func (c *Catalog) Lookup(id uint16) (Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// IDs returns all definition IDs, sorted.
func (c *Catalog) IDs() []uint16 {
	ids := make([]uint16, 0, len(c.defs))
	for id := range c.defs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// All returns all definitions ordered by ID.
func (c *Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.defs))
	for _, id := range c.IDs() {
		out = append(out, c.defs[id])
	}
	return out
}

// Definitions makes a slice of definitions usable as a reload source.
type Definitions []Definition

// HardcodedThings implements Provider.
func (d Definitions) HardcodedThings() []Definition {
	return d
}

// Reload rebuilds the namespace from file-defined records plus the native
// providers and swaps it in whole. On an ID collision the file-defined
// record wins; every shadowing is reported as a Conflict. Within one source
// the first record wins. Placed instances are never invalidated: they only
// reference IDs.
func (c *Catalog) Reload(fileDefs []Definition, providers ...Provider) []Conflict {
	next := make(map[uint16]Definition, len(fileDefs))
	var conflicts []Conflict

	for _, p := range providers {
		for _, d := range p.HardcodedThings() {
			if prev, ok := next[d.ID]; ok {
				conflicts = append(conflicts, Conflict{ID: d.ID, Kept: prev, Dropped: d})
				continue
			}
			next[d.ID] = d
		}
	}

	seen := make(map[uint16]bool, len(fileDefs))
	for _, d := range fileDefs {
		if seen[d.ID] {
			conflicts = append(conflicts, Conflict{ID: d.ID, Kept: next[d.ID], Dropped: d})
			continue
		}
		if prev, ok := next[d.ID]; ok {
			// File-defined wins over native.
			conflicts = append(conflicts, Conflict{ID: d.ID, Kept: d, Dropped: prev})
		}
		next[d.ID] = d
		seen[d.ID] = true
	}

	c.defs = next
	return conflicts
}
