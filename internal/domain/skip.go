package domain

import "sort"

// SkipSet holds the base names the operator asked to skip.
// It is never mutated once returned by its constructor.
type SkipSet struct {
	names map[string]struct{}
}

// NewSkipSet creates a SkipSet from names
func NewSkipSet(names ...string) SkipSet {
	set := SkipSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		set.names[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is skipped. Matching is exact.
func (s SkipSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of names in the set
func (s SkipSet) Len() int {
	return len(s.names)
}

// Names returns the skipped names in sorted order
func (s SkipSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
