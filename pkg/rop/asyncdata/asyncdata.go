package asyncdata

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/ib-77/ropdata/pkg/rop"
	"github.com/ib-77/ropdata/pkg/rop/optional"
)

// state is the payload of one lifecycle case. Each case carries only what
// is valid for it.
type state interface {
	status() Status
}

type notAskedState struct{}

type loadingState struct{}

type failureState[E any] struct {
	err E
}

type successState[D any] struct {
	data []D
}

func (notAskedState) status() Status   { return NotAskedStatus }
func (loadingState) status() Status    { return LoadingStatus }
func (failureState[E]) status() Status { return FailureStatus }
func (successState[D]) status() Status { return SuccessStatus }

// AsyncData is a snapshot of data coming from a slow or fallible source.
// Callers replace snapshots as a request progresses; the type itself does
// not police transitions. The zero value is NotAsked.
type AsyncData[D, E any] struct {
	state state
}

func NotAsked[D, E any]() AsyncData[D, E] {
	return AsyncData[D, E]{state: notAskedState{}}
}

func Loading[D, E any]() AsyncData[D, E] {
	return AsyncData[D, E]{state: loadingState{}}
}

// Loaded wraps a copy of data. It can be issued repeatedly for incremental
// loads and says nothing about the request being complete.
func Loaded[D, E any](data []D) AsyncData[D, E] {
	return loaded[D, E](append(make([]D, 0, len(data)), data...))
}

func Errored[D, E any](err E) AsyncData[D, E] {
	return AsyncData[D, E]{state: failureState[E]{err: err}}
}

// loaded takes ownership of data without copying.
func loaded[D, E any](data []D) AsyncData[D, E] {
	return AsyncData[D, E]{state: successState[D]{data: data}}
}

func (a AsyncData[D, E]) Status() Status {
	if a.state == nil {
		return NotAskedStatus
	}
	return a.state.status()
}

func (a AsyncData[D, E]) Is(status Status) bool {
	return a.Status() == status
}

// IsLoaded reports whether the request is no longer pending, whatever the
// outcome.
func (a AsyncData[D, E]) IsLoaded() bool {
	s := a.Status()
	return s == SuccessStatus || s == FailureStatus
}

func (a AsyncData[D, E]) data() ([]D, error) {
	if s, ok := a.state.(successState[D]); ok {
		return s.data, nil
	}
	return nil, notReady(a.Status())
}

// IsEmpty reports an empty sequence, or a single nil element.
func (a AsyncData[D, E]) IsEmpty() (bool, error) {
	data, err := a.data()
	if err != nil {
		return false, err
	}
	return len(data) == 0 || (len(data) == 1 && rop.IsNil(data[0])), nil
}

// HasValue treats the snapshot as a single value box: it is true only for a
// Success holding exactly one element equal to value.
func (a AsyncData[D, E]) HasValue(value D) bool {
	data, err := a.data()
	if err != nil || len(data) != 1 {
		return false
	}
	return rop.Equal(data[0], value)
}

// Value returns a copy of the loaded sequence.
func (a AsyncData[D, E]) Value() ([]D, error) {
	data, err := a.data()
	if err != nil {
		return nil, err
	}
	return append(make([]D, 0, len(data)), data...), nil
}

func (a AsyncData[D, E]) SingleValue() (D, error) {
	var zero D
	data, err := a.data()
	if err != nil {
		return zero, err
	}
	if len(data) != 1 {
		return zero, fmt.Errorf("%w: length %d", ErrNotSingleValued, len(data))
	}
	return data[0], nil
}

// Failure returns the error of a Failure snapshot.
func (a AsyncData[D, E]) Failure() (E, error) {
	if s, ok := a.state.(failureState[E]); ok {
		return s.err, nil
	}
	var zero E
	return zero, fmt.Errorf("%w: status is %s", ErrNotFailed, a.Status())
}

// GetOptional returns the first loaded element, or an empty Optional in
// every other case. It never fails.
func (a AsyncData[D, E]) GetOptional() optional.Optional[D] {
	data, err := a.data()
	if err != nil || len(data) == 0 {
		return optional.Empty[D]()
	}
	return optional.Of(data[0])
}

func (a AsyncData[D, E]) Filter(predicate func(v D, i int) bool) AsyncData[D, E] {
	data, err := a.data()
	if err != nil {
		return a
	}

	out := make([]D, 0, len(data))
	for i, v := range data {
		if predicate(v, i) {
			out = append(out, v)
		}
	}
	return loaded[D, E](out)
}

// Find returns the first element matching predicate, empty when none does.
func (a AsyncData[D, E]) Find(predicate func(v D, i int) bool) (optional.Optional[D], error) {
	idx, err := a.FindIndex(predicate)
	if err != nil {
		return optional.Empty[D](), err
	}
	if idx < 0 {
		return optional.Empty[D](), nil
	}
	data, _ := a.data()
	return optional.Of(data[idx]), nil
}

// FindIndex returns the index of the first match, or -1.
func (a AsyncData[D, E]) FindIndex(predicate func(v D, i int) bool) (int, error) {
	data, err := a.data()
	if err != nil {
		return -1, err
	}
	for i, v := range data {
		if predicate(v, i) {
			return i, nil
		}
	}
	return -1, nil
}

// Update returns a new Success with the element at index replaced.
func (a AsyncData[D, E]) Update(index int, value D) (AsyncData[D, E], error) {
	data, err := a.data()
	if err != nil {
		return a, err
	}
	if err := checkIndex(index, len(data)); err != nil {
		return a, err
	}

	out := slices.Clone(data)
	out[index] = value
	return loaded[D, E](out), nil
}

// Concat returns a new Success with items appended.
func (a AsyncData[D, E]) Concat(items ...D) (AsyncData[D, E], error) {
	data, err := a.data()
	if err != nil {
		return a, err
	}

	out := make([]D, 0, len(data)+len(items))
	out = append(out, data...)
	out = append(out, items...)
	return loaded[D, E](out), nil
}

// Sort returns a sorted copy of the sequence, not a new AsyncData. Sorting
// is stable; a nil compare orders elements by their %v text.
func (a AsyncData[D, E]) Sort(compare func(x, y D) int) ([]D, error) {
	data, err := a.data()
	if err != nil {
		return nil, err
	}
	if compare == nil {
		compare = func(x, y D) int {
			return cmp.Compare(fmt.Sprint(x), fmt.Sprint(y))
		}
	}

	out := append(make([]D, 0, len(data)), data...)
	slices.SortStableFunc(out, compare)
	return out, nil
}

func (a AsyncData[D, E]) Get(index int) (D, error) {
	var zero D
	data, err := a.data()
	if err != nil {
		return zero, err
	}
	if err := checkIndex(index, len(data)); err != nil {
		return zero, err
	}
	return data[index], nil
}

// Remove returns a new Success without the element at index. An index
// outside the sequence removes nothing.
func (a AsyncData[D, E]) Remove(index int) (AsyncData[D, E], error) {
	if _, err := a.data(); err != nil {
		return a, err
	}
	return a.Filter(func(_ D, i int) bool { return i != index }), nil
}

func (a AsyncData[D, E]) Every(predicate func(v D, i int) bool) (bool, error) {
	data, err := a.data()
	if err != nil {
		return false, err
	}
	for i, v := range data {
		if !predicate(v, i) {
			return false, nil
		}
	}
	return true, nil
}

func (a AsyncData[D, E]) All(predicate func(v D, i int) bool) (bool, error) {
	return a.Every(predicate)
}

func (a AsyncData[D, E]) Some(predicate func(v D, i int) bool) (bool, error) {
	data, err := a.data()
	if err != nil {
		return false, err
	}
	for i, v := range data {
		if predicate(v, i) {
			return true, nil
		}
	}
	return false, nil
}

func (a AsyncData[D, E]) Any(predicate func(v D, i int) bool) (bool, error) {
	return a.Some(predicate)
}

func (a AsyncData[D, E]) String() string {
	switch s := a.state.(type) {
	case successState[D]:
		return fmt.Sprintf("AsyncData.%s%v", SuccessStatus, s.data)
	case failureState[E]:
		return fmt.Sprintf("AsyncData.%s[%v]", FailureStatus, s.err)
	default:
		return "AsyncData." + a.Status().String()
	}
}

// carry rebuilds a non-Success snapshot at a new data type, keeping the
// state and any failure. ok is false for a Success.
func carry[D, E, U any](a AsyncData[D, E]) (res AsyncData[U, E], ok bool) {
	switch s := a.state.(type) {
	case successState[D]:
		return res, false
	case failureState[E]:
		return Errored[U](s.err), true
	case loadingState:
		return Loading[U, E](), true
	default:
		return NotAsked[U, E](), true
	}
}

// Map transforms every loaded element. Other states are carried over
// unchanged at the new type.
func Map[D, E, U any](a AsyncData[D, E], fn func(v D, i int) U) AsyncData[U, E] {
	if res, ok := carry[D, E, U](a); ok {
		return res
	}

	data, _ := a.data()
	out := make([]U, len(data))
	for i, v := range data {
		out[i] = fn(v, i)
	}
	return loaded[U, E](out)
}

// MapValue maps and reads the result in one step.
func MapValue[D, E, U any](a AsyncData[D, E], fn func(v D, i int) U) ([]U, error) {
	return Map(a, fn).Value()
}

// Reduce folds the loaded elements into a single-element Success. Other
// states are carried over unchanged at the new type.
func Reduce[D, E, U any](a AsyncData[D, E], fn func(acc U, v D, i int) U, seed U) AsyncData[U, E] {
	if res, ok := carry[D, E, U](a); ok {
		return res
	}

	data, _ := a.data()
	acc := seed
	for i, v := range data {
		acc = fn(acc, v, i)
	}
	return loaded[U, E]([]U{acc})
}
