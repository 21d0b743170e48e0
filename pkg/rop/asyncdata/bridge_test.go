package asyncdata

import (
	"context"
	"testing"

	"github.com/ib-77/ropdata/pkg/rop"
	"github.com/ib-77/ropdata/pkg/rop/either"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEither(t *testing.T) {
	t.Parallel()

	e, err := Loaded[int, error]([]int{1, 2}).ToEither()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, e.RightOptional().OrNothing())

	e, err = Errored[int](errBoom).ToEither()
	require.NoError(t, err)
	l, err := e.GetLeft()
	require.NoError(t, err)
	assert.Equal(t, errBoom, l)

	_, err = Loading[int, error]().ToEither()
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestFromEither(t *testing.T) {
	t.Parallel()

	ok := FromEither(either.Right[error]([]string{"a"}))
	assert.True(t, ok.HasValue("a"))

	failed := FromEither(either.Left[error, []string](errBoom))
	assert.True(t, failed.Is(FailureStatus))
}

func TestFromResult(t *testing.T) {
	t.Parallel()

	ok := FromResult[int](rop.Success([]int{4}))
	assert.True(t, ok.HasValue(4))

	failed := FromResult[int](rop.Fail[[]int](errBoom))
	e, err := failed.Failure()
	require.NoError(t, err)
	assert.Equal(t, errBoom, e)

	cancelled := FromResult[int](rop.Cancel[[]int](context.Canceled))
	assert.True(t, cancelled.Is(FailureStatus))

	assert.True(t, FromResult[int](rop.Result[[]int]{}).Is(NotAskedStatus))
}

func TestEitherChainIntoAsyncData(t *testing.T) {
	t.Parallel()
	fetch := func(ids []int) either.Either[error, []int] {
		return either.Right[error](ids)
	}

	res := either.ProceedRight(either.Right[error]([]int{1, 2, 3}), fetch)
	a := FromEither(res)
	sum := Reduce(a, func(acc int, v int, _ int) int { return acc + v }, 0)
	assert.True(t, sum.HasValue(6))
}
