package optional

import "errors"

// ErrAbsent is the panic value of MustGet on an absent optional. Accessing
// an absent value is a programming error, not a modeled failure.
var ErrAbsent = errors.New("optional: no value present")

type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OfPtr wraps the pointed-to value, or returns None for a nil pointer.
func OfPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the value or panics with ErrAbsent when absent.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrAbsent)
	}
	return o.value
}

func (o Optional[T]) OrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

func (o Optional[T]) ForEach(consume func(T)) {
	if o.present {
		consume(o.value)
	}
}

func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Map transforms a present value; absence passes through.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}
