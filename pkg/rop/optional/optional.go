package optional

import (
	"errors"
	"fmt"

	"github.com/ib-77/ropdata/pkg/rop"
)

var ErrNoSuchElement = errors.New("no such element")

// Optional holds zero or one value of T. The zero value is empty.
type Optional[T any] struct {
	value   T
	present bool
}

// wrapped is implemented by every Optional instantiation so Of can
// recognise an already-wrapped value whatever its type parameter.
type wrapped interface {
	inner() (any, bool)
}

func (o Optional[T]) inner() (any, bool) {
	return o.value, o.present
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Of wraps value. Nil pointers, maps, slices, funcs, chans and interfaces,
// as well as empty Optionals, produce an empty Optional. A present Optional
// held in an interface-typed T is unwrapped and its value wrapped instead.
func Of[T any](value T) Optional[T] {
	if rop.IsNil(value) {
		return Empty[T]()
	}
	if nested, ok := any(value).(wrapped); ok {
		v, present := nested.inner()
		if !present {
			return Empty[T]()
		}
		if unwrapped, ok := v.(T); ok {
			return Of(unwrapped)
		}
	}
	return Optional[T]{value: value, present: true}
}

func OfPtr[T any](value *T) Optional[T] {
	if value == nil {
		return Empty[T]()
	}
	return Of(*value)
}

// OfOk adapts the comma-ok idiom: v, ok := m[k]; OfOk(v, ok).
func OfOk[T any](value T, ok bool) Optional[T] {
	if !ok {
		return Empty[T]()
	}
	return Of(value)
}

// Join collapses one level of nesting.
func Join[T any](o Optional[Optional[T]]) Optional[T] {
	if !o.present {
		return Empty[T]()
	}
	return o.value
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the value or ErrNoSuchElement.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoSuchElement
	}
	return o.value, nil
}

func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return Empty[T]()
}

func (o Optional[T]) IfPresent(consumer func(T)) {
	if o.present {
		consumer(o.value)
	}
}

func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

func (o Optional[T]) OrElseGet(other func() T) T {
	if o.present {
		return o.value
	}
	return other()
}

// OrNothing returns the value, or the zero value of T when empty.
func (o Optional[T]) OrNothing() T {
	return o.value
}

// OrNull returns a pointer to a copy of the value, or nil when empty.
func (o Optional[T]) OrNull() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// OrElseThrow returns the value, or the error built by exceptionSupplier.
// The supplier is only called when the Optional is empty; a nil error from
// it is replaced by ErrNoSuchElement.
func (o Optional[T]) OrElseThrow(exceptionSupplier func() error) (T, error) {
	if o.present {
		return o.value, nil
	}

	var zero T
	if err := exceptionSupplier(); err != nil {
		return zero, err
	}
	return zero, ErrNoSuchElement
}

// Equals reports whether both Optionals are present and hold equal values.
// Empty Optionals are never equal to anything, including other empty ones.
func (o Optional[T]) Equals(other Optional[T], eq ...func(a, b T) bool) bool {
	if !o.present || !other.present {
		return false
	}
	if len(eq) > 0 && eq[0] != nil {
		return eq[0](o.value, other.value)
	}
	return rop.Equal(o.value, other.value)
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

func Map[T, U any](o Optional[T], mapper func(T) U) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	return Of(mapper(o.value))
}

func FlatMap[T, U any](o Optional[T], mapper func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	res := mapper(o.value)
	if !res.present {
		return Empty[U]()
	}
	return Of(res.value)
}

// Cast narrows or widens the held value to S. The result is empty unless
// the value is present, guard accepts it and it is assignable to S.
func Cast[T, S any](o Optional[T], guard func(T) bool) Optional[S] {
	if !o.present || !guard(o.value) {
		return Empty[S]()
	}
	s, ok := any(o.value).(S)
	if !ok {
		return Empty[S]()
	}
	return Of(s)
}
