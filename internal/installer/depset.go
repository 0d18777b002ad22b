package installer

import "slices"

// DependencySet is an insertion-ordered set of package identifiers.
type DependencySet struct {
	items []string
	seen  map[string]struct{}
}

// NewDependencySet returns a set containing ids.
func NewDependencySet(ids ...string) *DependencySet {
	s := &DependencySet{seen: make(map[string]struct{})}
	s.Add(ids...)
	return s
}

// Add inserts ids that are not yet present. Empty strings are ignored.
func (s *DependencySet) Add(ids ...string) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.items = append(s.items, id)
	}
}

// Has reports whether id is in the set.
func (s *DependencySet) Has(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// Items returns the identifiers in first-insertion order.
func (s *DependencySet) Items() []string {
	return slices.Clone(s.items)
}

// Len returns the number of identifiers.
func (s *DependencySet) Len() int {
	return len(s.items)
}
