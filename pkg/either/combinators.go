package either

// The type-changing combinators live at package level because Go methods
// cannot introduce new type parameters. Each names the side it acts on; the
// other side always passes through untouched.

// Fold applies exactly one of the two functions, selected by the side the
// value holds.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeft transforms the left payload. A right-holding value passes through
// unchanged; only its static left type moves to T and the transform is
// never invoked.
func MapLeft[L, R, T any](e Either[L, R], f func(L) T) Either[T, R] {
	if e.isRight {
		return rightFrom[L, R, T](e)
	}
	return Left[T, R](f(e.left))
}

// MapRight is the mirror of MapLeft.
func MapRight[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if !e.isRight {
		return leftFrom[L, R, T](e)
	}
	return Right[L](f(e.right))
}

// FlatMapLeft replaces a left-holding value with the result of f; a
// right-holding value passes through unchanged.
func FlatMapLeft[L, R, T any](e Either[L, R], f func(L) Either[T, R]) Either[T, R] {
	if e.isRight {
		return rightFrom[L, R, T](e)
	}
	return f(e.left)
}

// FlatMapRight is the mirror of FlatMapLeft.
func FlatMapRight[L, R, T any](e Either[L, R], f func(R) Either[L, T]) Either[L, T] {
	if !e.isRight {
		return leftFrom[L, R, T](e)
	}
	return f(e.right)
}
