package either

import "github.com/ib-77/tix/pkg/optional"

// AccessError is the panic value of unchecked payload access against the
// side an either does not hold. It signals a programming error, distinct
// from the modeled left/right channels; prefer Fold or the total projection
// operations.
type AccessError struct {
	Accessed string
	Holds    string
}

func (e AccessError) Error() string {
	return "either: " + e.Accessed + " access on " + e.Holds + "-holding value"
}

// LeftProjection is a side-bound view over an Either. Every operation reads
// through to the underlying value; none of them invokes a caller function
// when the value is right-holding.
type LeftProjection[L, R any] struct {
	e Either[L, R]
}

// Either returns the underlying value, for chaining back out of the view.
func (p LeftProjection[L, R]) Either() Either[L, R] {
	return p.e
}

// Get returns the left payload or panics with AccessError on a
// right-holding value.
func (p LeftProjection[L, R]) Get() L {
	if p.e.isRight {
		panic(AccessError{Accessed: "left", Holds: "right"})
	}
	return p.e.left
}

func (p LeftProjection[L, R]) GetOrElse(defaultValue L) L {
	if p.e.isRight {
		return defaultValue
	}
	return p.e.left
}

// Peek feeds the payload to consume when left-holding and returns the
// original value unchanged.
func (p LeftProjection[L, R]) Peek(consume func(L)) Either[L, R] {
	if !p.e.isRight {
		consume(p.e.left)
	}
	return p.e
}

func (p LeftProjection[L, R]) ForEach(consume func(L)) {
	if !p.e.isRight {
		consume(p.e.left)
	}
}

func (p LeftProjection[L, R]) Exists(predicate func(L) bool) bool {
	return !p.e.isRight && predicate(p.e.left)
}

func (p LeftProjection[L, R]) ToOptional() optional.Optional[L] {
	if p.e.isRight {
		return optional.None[L]()
	}
	return optional.Some(p.e.left)
}

// Filter yields the original value iff it is left-holding and the predicate
// accepts the payload; a right-holding value is always absent and the
// predicate is never consulted.
func (p LeftProjection[L, R]) Filter(predicate func(L) bool) optional.Optional[Either[L, R]] {
	if p.Exists(predicate) {
		return optional.Some(p.e)
	}
	return optional.None[Either[L, R]]()
}

// RightProjection is the mirror of LeftProjection.
type RightProjection[L, R any] struct {
	e Either[L, R]
}

func (p RightProjection[L, R]) Either() Either[L, R] {
	return p.e
}

// Get returns the right payload or panics with AccessError on a
// left-holding value.
func (p RightProjection[L, R]) Get() R {
	if !p.e.isRight {
		panic(AccessError{Accessed: "right", Holds: "left"})
	}
	return p.e.right
}

func (p RightProjection[L, R]) GetOrElse(defaultValue R) R {
	if !p.e.isRight {
		return defaultValue
	}
	return p.e.right
}

func (p RightProjection[L, R]) Peek(consume func(R)) Either[L, R] {
	if p.e.isRight {
		consume(p.e.right)
	}
	return p.e
}

func (p RightProjection[L, R]) ForEach(consume func(R)) {
	if p.e.isRight {
		consume(p.e.right)
	}
}

func (p RightProjection[L, R]) Exists(predicate func(R) bool) bool {
	return p.e.isRight && predicate(p.e.right)
}

func (p RightProjection[L, R]) ToOptional() optional.Optional[R] {
	if !p.e.isRight {
		return optional.None[R]()
	}
	return optional.Some(p.e.right)
}

func (p RightProjection[L, R]) Filter(predicate func(R) bool) optional.Optional[Either[L, R]] {
	if p.Exists(predicate) {
		return optional.Some(p.e)
	}
	return optional.None[Either[L, R]]()
}
