package tuples

import "iter"

// Adapter constructors lifting key/value functions into tuple functions,
// for use with iterator pipelines, slices.SortFunc and friends.

// Entries lifts a two-argument mapper into a tuple mapper.
func Entries[K, V, R any](f func(K, V) R) func(Tuple[K, V]) R {
	return func(t Tuple[K, V]) R { return f(t.key, t.value) }
}

// Keys lifts a key mapper into a tuple mapper, preserving the value.
func Keys[K, V, R any](f func(K) R) func(Tuple[K, V]) Tuple[R, V] {
	return func(t Tuple[K, V]) Tuple[R, V] { return Of(f(t.key), t.value) }
}

// Values lifts a value mapper into a tuple mapper, preserving the key.
func Values[K, V, R any](f func(V) R) func(Tuple[K, V]) Tuple[K, R] {
	return func(t Tuple[K, V]) Tuple[K, R] { return Of(t.key, f(t.value)) }
}

// ToEntry lifts a two-argument consumer into a tuple consumer.
func ToEntry[K, V any](consume func(K, V)) func(Tuple[K, V]) {
	return func(t Tuple[K, V]) { consume(t.key, t.value) }
}

// ToKey lifts a key consumer into a tuple consumer.
func ToKey[K, V any](consume func(K)) func(Tuple[K, V]) {
	return func(t Tuple[K, V]) { consume(t.key) }
}

// ToValue lifts a value consumer into a tuple consumer.
func ToValue[K, V any](consume func(V)) func(Tuple[K, V]) {
	return func(t Tuple[K, V]) { consume(t.value) }
}

// IsEntry lifts a two-argument predicate into a tuple predicate.
func IsEntry[K, V any](predicate func(K, V) bool) func(Tuple[K, V]) bool {
	return func(t Tuple[K, V]) bool { return predicate(t.key, t.value) }
}

// IsKey lifts a key predicate into a tuple predicate.
func IsKey[K, V any](predicate func(K) bool) func(Tuple[K, V]) bool {
	return func(t Tuple[K, V]) bool { return predicate(t.key) }
}

// IsValue lifts a value predicate into a tuple predicate.
func IsValue[K, V any](predicate func(V) bool) func(Tuple[K, V]) bool {
	return func(t Tuple[K, V]) bool { return predicate(t.value) }
}

// ByKey lifts a key comparison into a tuple comparison.
func ByKey[K, V any](compare func(K, K) int) func(Tuple[K, V], Tuple[K, V]) int {
	return func(a, b Tuple[K, V]) int { return compare(a.key, b.key) }
}

// ByValue lifts a value comparison into a tuple comparison.
func ByValue[K, V any](compare func(V, V) int) func(Tuple[K, V], Tuple[K, V]) int {
	return func(a, b Tuple[K, V]) int { return compare(a.value, b.value) }
}

// WithKeys lifts a key expander into a tuple expander, pairing every
// produced key with the original value.
func WithKeys[K, V, R any](expand func(K) iter.Seq[R]) func(Tuple[K, V]) iter.Seq[Tuple[R, V]] {
	return func(t Tuple[K, V]) iter.Seq[Tuple[R, V]] {
		return func(yield func(Tuple[R, V]) bool) {
			for r := range expand(t.key) {
				if !yield(Of(r, t.value)) {
					return
				}
			}
		}
	}
}

// WithValues lifts a value expander into a tuple expander, pairing every
// produced value with the original key.
func WithValues[K, V, R any](expand func(V) iter.Seq[R]) func(Tuple[K, V]) iter.Seq[Tuple[K, R]] {
	return func(t Tuple[K, V]) iter.Seq[Tuple[K, R]] {
		return func(yield func(Tuple[K, R]) bool) {
			for r := range expand(t.value) {
				if !yield(Of(t.key, r)) {
					return
				}
			}
		}
	}
}

// FromMap yields one tuple per map entry, in unspecified order.
func FromMap[K comparable, V any](m map[K]V) iter.Seq[Tuple[K, V]] {
	return func(yield func(Tuple[K, V]) bool) {
		for k, v := range m {
			if !yield(Of(k, v)) {
				return
			}
		}
	}
}

// FromSeq2 pairs up a two-value iterator into a tuple iterator.
func FromSeq2[K, V any](seq iter.Seq2[K, V]) iter.Seq[Tuple[K, V]] {
	return func(yield func(Tuple[K, V]) bool) {
		for k, v := range seq {
			if !yield(Of(k, v)) {
				return
			}
		}
	}
}

// CollectMap gathers tuples into a map. Later keys overwrite earlier ones.
func CollectMap[K comparable, V any](seq iter.Seq[Tuple[K, V]]) map[K]V {
	m := make(map[K]V)
	for t := range seq {
		m[t.key] = t.value
	}
	return m
}

// MapSeq applies f to every element of a tuple iterator.
func MapSeq[T, R any](seq iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for t := range seq {
			if !yield(f(t)) {
				return
			}
		}
	}
}

// FilterSeq keeps the elements the predicate accepts.
func FilterSeq[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range seq {
			if predicate(t) && !yield(t) {
				return
			}
		}
	}
}

// FlatMapSeq expands every element into a sub-iterator and flattens.
func FlatMapSeq[T, R any](seq iter.Seq[T], expand func(T) iter.Seq[R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		for t := range seq {
			for r := range expand(t) {
				if !yield(r) {
					return
				}
			}
		}
	}
}
