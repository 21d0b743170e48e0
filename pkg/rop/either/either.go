package either

import (
	"fmt"

	"github.com/ib-77/ropdata/pkg/rop/optional"
)

// Either holds exactly one of a left value (by convention the failure or
// alternate outcome) and a right value (the primary outcome). A single
// discriminator decides which side is set, so an Either can never be both
// or neither. The zero value is a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// Try runs fn and places its error on the left or its value on the right.
func Try[T any](fn func() (T, error)) Either[error, T] {
	v, err := fn()
	if err != nil {
		return Left[error, T](err)
	}
	return Right[error](v)
}

// LeftOf builds a Left from an Optional. An empty Optional cannot fill the
// left side and yields optional.ErrNoSuchElement.
func LeftOf[L, R any](value optional.Optional[L]) (Either[L, R], error) {
	v, err := value.Get()
	if err != nil {
		return Either[L, R]{}, err
	}
	return Left[L, R](v), nil
}

// RightOf builds a Right from an Optional, see LeftOf.
func RightOf[L, R any](value optional.Optional[R]) (Either[L, R], error) {
	v, err := value.Get()
	if err != nil {
		return Either[L, R]{}, err
	}
	return Right[L, R](v), nil
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the left value, or optional.ErrNoSuchElement for a Right.
func (e Either[L, R]) GetLeft() (L, error) {
	if e.isRight {
		var zero L
		return zero, fmt.Errorf("%w: either holds a right value", optional.ErrNoSuchElement)
	}
	return e.left, nil
}

// GetRight returns the right value, or optional.ErrNoSuchElement for a Left.
func (e Either[L, R]) GetRight() (R, error) {
	if !e.isRight {
		var zero R
		return zero, fmt.Errorf("%w: either holds a left value", optional.ErrNoSuchElement)
	}
	return e.right, nil
}

func (e Either[L, R]) LeftOptional() optional.Optional[L] {
	if e.isRight {
		return optional.Empty[L]()
	}
	return optional.Of(e.left)
}

func (e Either[L, R]) RightOptional() optional.Optional[R] {
	if !e.isRight {
		return optional.Empty[R]()
	}
	return optional.Of(e.right)
}

// Apply runs exactly one of the consumers, matching the side that is set.
func (e Either[L, R]) Apply(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
		return
	}
	onLeft(e.left)
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right[%v]", e.right)
	}
	return fmt.Sprintf("Left[%v]", e.left)
}

// Map folds the Either into a single value. Only the function matching the
// set side is called.
func Map[L, R, O any](e Either[L, R], onLeft func(L) O, onRight func(R) O) O {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeft transforms the left value. A Right keeps its value and only
// changes the static left type.
func MapLeft[L, R, O any](e Either[L, R], fn func(L) O) Either[O, R] {
	if e.isRight {
		return Right[O, R](e.right)
	}
	return Left[O, R](fn(e.left))
}

// MapRight transforms the right value. A Left keeps its value and only
// changes the static right type.
func MapRight[L, R, O any](e Either[L, R], fn func(R) O) Either[L, O] {
	if !e.isRight {
		return Left[L, O](e.left)
	}
	return Right[L, O](fn(e.right))
}

// ProceedLeft binds a left-biased step: a Left is replaced by fn's result,
// a Right short-circuits into the new shape.
func ProceedLeft[L, R, T any](e Either[L, R], fn func(L) Either[T, R]) Either[T, R] {
	if e.isRight {
		return Right[T, R](e.right)
	}
	return fn(e.left)
}

// ProceedRight binds a right-biased step: a Right is replaced by fn's
// result, a Left short-circuits into the new shape.
func ProceedRight[L, R, T any](e Either[L, R], fn func(R) Either[L, T]) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return fn(e.right)
}

// JoinLeft collapses an Either whose left value is itself an Either.
func JoinLeft[L, R any](e Either[Either[L, R], R]) Either[L, R] {
	if e.isRight {
		return Right[L, R](e.right)
	}
	return e.left
}

// JoinRight collapses an Either whose right value is itself an Either.
func JoinRight[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	if !e.isRight {
		return Left[L, R](e.left)
	}
	return e.right
}
