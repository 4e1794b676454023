package tuples

// Tuple is an immutable ordered key/value pair.
type Tuple[K, V any] struct {
	key   K
	value V
}

func Of[K, V any](k K, v V) Tuple[K, V] {
	return Tuple[K, V]{key: k, value: v}
}

func (t Tuple[K, V]) Key() K {
	return t.key
}

func (t Tuple[K, V]) Value() V {
	return t.value
}

// WithValue returns a constructor that pairs each key with a fixed value.
func WithValue[K, V any](value V) func(K) Tuple[K, V] {
	return func(k K) Tuple[K, V] { return Of(k, value) }
}

// WithKey returns a constructor that pairs each value with a fixed key.
func WithKey[K, V any](key K) func(V) Tuple[K, V] {
	return func(v V) Tuple[K, V] { return Of(key, v) }
}

// Swap exchanges key and value.
func Swap[K, V any](t Tuple[K, V]) Tuple[V, K] {
	return Of(t.value, t.key)
}
