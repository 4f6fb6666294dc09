package types

// Set is a generic hash set for comparable types, backed by a
// map[T]struct{}. It is mutable: Add modifies the set in place.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and optionally inserts the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether the given element is a member of the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}
