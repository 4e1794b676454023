package either

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/tix/pkg/optional"
)

// Either holds exactly one of two payloads, tagged by the side it was
// constructed on. The zero value is not meaningful; use the constructors.
type Either[L, R any] struct {
	id        uuid.UUID
	createdAt time.Time
	left      L
	right     R
	isRight   bool
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{
		left:      v,
		isRight:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{
		right:     v,
		isRight:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ToLeft wraps a present optional on the left, otherwise the default on the
// right.
func ToLeft[L, R any](opt optional.Optional[L], rightDefault R) Either[L, R] {
	if v, ok := opt.Get(); ok {
		return Left[L, R](v)
	}
	return Right[L](rightDefault)
}

// ToRight wraps a present optional on the right, otherwise the default on
// the left.
func ToRight[L, R any](opt optional.Optional[R], leftDefault L) Either[L, R] {
	if v, ok := opt.Get(); ok {
		return Right[L](v)
	}
	return Left[L, R](leftDefault)
}

// leftFrom rebinds a left-holding value under a new right type, keeping the
// payload, id and creation time.
func leftFrom[L, R, T any](from Either[L, R]) Either[L, T] {
	return Either[L, T]{
		left:      from.left,
		isRight:   false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// rightFrom is the mirror of leftFrom.
func rightFrom[L, R, T any](from Either[L, R]) Either[T, R] {
	return Either[T, R]{
		right:     from.right,
		isRight:   true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Swap reinterprets the sides, keeping the payload, id and creation time.
func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{
		left:      e.right,
		right:     e.left,
		isRight:   !e.isRight,
		createdAt: e.createdAt,
		id:        e.id,
	}
}

// Left returns the left-side view of this value.
func (e Either[L, R]) Left() LeftProjection[L, R] {
	return LeftProjection[L, R]{e: e}
}

// Right returns the right-side view of this value.
func (e Either[L, R]) Right() RightProjection[L, R] {
	return RightProjection[L, R]{e: e}
}

func (e Either[L, R]) Id() uuid.UUID {
	return e.id
}

// CreatedAt time creation (UTC)
func (e Either[L, R]) CreatedAt() time.Time {
	return e.createdAt
}
