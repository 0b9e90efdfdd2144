package util

type Set[T comparable] struct {
	set map[T]bool
}

func NewSet[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{make(map[T]bool)}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

func (m *Set[T]) Has(val T) bool {
	_, ok := m.set[val]
	return ok
}

func (m *Set[T]) Add(val T) {
	m.set[val] = true
}

func (m *Set[T]) Len() int {
	return len(m.set)
}

// Values returns the set contents in unspecified order.
func (m *Set[T]) Values() []T {
	return MapKeys(m.set)
}
