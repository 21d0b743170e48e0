package asyncdata

import (
	"github.com/ib-77/ropdata/pkg/rop"
	"github.com/ib-77/ropdata/pkg/rop/either"
)

// ToEither views a settled snapshot as an Either: failures go left, loaded
// data goes right. Pending snapshots return ErrNotReady.
func (a AsyncData[D, E]) ToEither() (either.Either[E, []D], error) {
	switch s := a.state.(type) {
	case successState[D]:
		return either.Right[E](append(make([]D, 0, len(s.data)), s.data...)), nil
	case failureState[E]:
		return either.Left[E, []D](s.err), nil
	default:
		return either.Either[E, []D]{}, notReady(a.Status())
	}
}

func FromEither[D, E any](e either.Either[E, []D]) AsyncData[D, E] {
	return either.Map(e, Errored[D, E], Loaded[D, E])
}

// FromResult settles a railway result: a success becomes Loaded, a failure
// or cancellation becomes Errored, and a result that was never produced is
// NotAsked.
func FromResult[D any](r rop.WithEmpty[[]D]) AsyncData[D, error] {
	switch {
	case r.IsEmpty():
		return NotAsked[D, error]()
	case r.IsSuccess():
		return Loaded[D, error](r.Result())
	default:
		return Errored[D](r.Err())
	}
}
