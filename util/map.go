package util

func MapKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

type DefaultMap[K comparable, V any] struct {
	content     map[K]V
	defaultFunc func(K) V
}

func NewDefaultMap[K comparable, V any](defaultFunc func(K) V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{make(map[K]V), defaultFunc}
}

func (m *DefaultMap[K, V]) Get(key K) V {
	var val V
	var ok bool
	if val, ok = m.content[key]; !ok {
		val = m.defaultFunc(key)
		m.content[key] = val
	}
	return val
}

// Peek is like Get, but does not create an entry for an absent key.
func (m *DefaultMap[K, V]) Peek(key K) (V, bool) {
	val, ok := m.content[key]
	return val, ok
}

func (m *DefaultMap[K, V]) Len() int {
	return len(m.content)
}

func (m *DefaultMap[K, V]) ForEach(fn func(K, V) bool) {
	for k, v := range m.content {
		if !fn(k, v) {
			break
		}
	}
}
