package either

import (
	"errors"

	"github.com/ib-77/ropdata/pkg/rop"
)

var ErrEmptyResult = errors.New("result has no value and no error")

// FromResult moves a railway result onto an Either: successes go right,
// failures and cancellations go left with their error. A result that was
// never produced becomes a Left holding ErrEmptyResult.
func FromResult[T any](r rop.Result[T]) Either[error, T] {
	switch {
	case r.IsSuccess():
		return Right[error](r.Result())
	case r.IsFailure(), r.IsCancel() && r.Err() != nil:
		return Left[error, T](r.Err())
	default:
		return Left[error, T](ErrEmptyResult)
	}
}

// ToResult is the inverse of FromResult. Left context errors become
// cancellations, other left values become failures. A nil left error is
// reported as ErrEmptyResult so the result still reads as a failure.
func ToResult[T any](e Either[error, T]) rop.Result[T] {
	if e.isRight {
		return rop.Success(e.right)
	}
	if e.left == nil {
		return rop.Fail[T](ErrEmptyResult)
	}
	if rop.IsCancellationError(e.left) {
		return rop.Cancel[T](e.left)
	}
	return rop.Fail[T](e.left)
}

// ProceedResult runs fn on the value of a successful result. Failures and
// cancellations skip fn and move over to U with their id and timestamp.
func ProceedResult[T, U any](r rop.Result[T], fn func(T) Either[error, U]) rop.Result[U] {
	if r.IsSuccess() {
		return ToResult(fn(r.Result()))
	}
	if r.IsEmpty() {
		return rop.Fail[U](ErrEmptyResult)
	}
	return rop.FailFrom[T, U](r)
}
