package collections

import "sort"

type Set[V comparable] map[V]struct{}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

func (set Set[V]) Len() int {
	return len(set)
}

// Slice returns the elements of the set ordered by less. A nil less leaves
// the order unspecified.
func (set Set[V]) Slice(less func(a, b V) bool) []V {
	values := make([]V, 0, len(set))
	for value := range set {
		values = append(values, value)
	}

	if less != nil {
		sort.Slice(values, func(i, j int) bool {
			return less(values[i], values[j])
		})
	}
	return values
}
