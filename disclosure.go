package cmdref

import (
	"maps"
	"slices"
)

// Disclosure is the set of expanded category IDs for one browsing session.
// The zero value is the empty set. Disclosure values are immutable: Toggle
// returns a new value and leaves the receiver unchanged.
//
// Any ID is accepted, including IDs that match no category; callers simply
// never render details for those.
type Disclosure struct {
	expanded map[string]struct{}
}

// NewDisclosure returns a Disclosure with the given IDs expanded.
func NewDisclosure(ids ...string) Disclosure {
	expanded := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		expanded[id] = struct{}{}
	}
	return Disclosure{expanded: expanded}
}

// Toggle returns a copy of d with id collapsed if it was expanded, or
// expanded if it was not. Any number of categories may be expanded at once.
func (d Disclosure) Toggle(id string) Disclosure {
	next := make(map[string]struct{}, len(d.expanded)+1)
	for k := range d.expanded {
		next[k] = struct{}{}
	}

	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}

	return Disclosure{expanded: next}
}

// IsExpanded reports whether id is expanded.
func (d Disclosure) IsExpanded(id string) bool {
	_, ok := d.expanded[id]
	return ok
}

// Len returns the number of expanded IDs.
func (d Disclosure) Len() int {
	return len(d.expanded)
}

// IDs returns the expanded IDs in sorted order.
func (d Disclosure) IDs() []string {
	return slices.Sorted(maps.Keys(d.expanded))
}

// Equal reports whether d and other expand the same IDs.
func (d Disclosure) Equal(other Disclosure) bool {
	if len(d.expanded) != len(other.expanded) {
		return false
	}
	for id := range d.expanded {
		if !other.IsExpanded(id) {
			return false
		}
	}
	return true
}
