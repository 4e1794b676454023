package catch

import (
	"reflect"

	"github.com/ib-77/tix/pkg/either"
	"github.com/ib-77/tix/pkg/optional"
)

// Catcher guards exactly one panic type. It holds the runtime descriptor of
// E, is immutable after construction and may be shared between callers.
type Catcher[E any] struct {
	guarded reflect.Type
}

// Catching builds a Catcher for panic values whose dynamic type is exactly
// E. Matching is by concrete-type equality: values of types assignable to E
// but not identical to it are not intercepted, so a Catcher instantiated
// with an interface type never matches anything.
func Catching[E any]() Catcher[E] {
	return Catcher[E]{guarded: reflect.TypeOf((*E)(nil)).Elem()}
}

// intercept converts a recovered value to E when its dynamic type equals
// the guarded type, and otherwise re-panics with the identical value.
func (c Catcher[E]) intercept(recovered any) E {
	if reflect.TypeOf(recovered) != c.guarded {
		panic(recovered)
	}
	return recovered.(E)
}

// Either runs supply and wraps its result on the right. A panic of exactly
// the guarded type lands on the left; any other panic propagates verbatim.
func Either[E, R any](c Catcher[E], supply func() R) (res either.Either[E, R]) {
	defer func() {
		if r := recover(); r != nil {
			res = either.Left[E, R](c.intercept(r))
		}
	}()
	return either.Right[E](supply())
}

// Optional runs supply and wraps its result when it returns. A panic of
// exactly the guarded type yields an absent optional; any other panic
// propagates verbatim.
func Optional[E, R any](c Catcher[E], supply func() R) (res optional.Optional[R]) {
	defer func() {
		if r := recover(); r != nil {
			c.intercept(r)
			res = optional.None[R]()
		}
	}()
	return optional.Some(supply())
}

// EitherInt is Either specialized for int results.
func (c Catcher[E]) EitherInt(supply func() int) either.Either[E, int] {
	return Either(c, supply)
}

// EitherInt64 is Either specialized for int64 results.
func (c Catcher[E]) EitherInt64(supply func() int64) either.Either[E, int64] {
	return Either(c, supply)
}

// EitherFloat64 is Either specialized for float64 results.
func (c Catcher[E]) EitherFloat64(supply func() float64) either.Either[E, float64] {
	return Either(c, supply)
}

// Try adapts an error-returning call: a nil error wraps the result on the
// right, a non-nil error lands on the left. No panic is intercepted.
func Try[R any](supply func() (R, error)) either.Either[error, R] {
	out, err := supply()
	if err != nil {
		return either.Left[error, R](err)
	}
	return either.Right[error](out)
}
