// Package lazy provides Lazy[T], a value built on first use.
package lazy

import "sync"

type Lazy[T any] struct {
	once    sync.Once
	builder func() T
	value   T
}

// New defers builder until Value is first called. The builder may have
// side effects; it runs at most once even with concurrent readers.
func New[T any](builder func() T) *Lazy[T] {
	return &Lazy[T]{builder: builder}
}

// Of returns an already-initialised Lazy.
func Of[T any](value T) *Lazy[T] {
	l := &Lazy[T]{value: value}
	l.once.Do(func() {})
	return l
}

func (l *Lazy[T]) Value() T {
	l.once.Do(func() {
		l.value = l.builder()
		l.builder = nil
	})
	return l.value
}

// Chain derives a new Lazy from l. Neither is built until the derived
// value is read.
func Chain[T, S any](l *Lazy[T], builder func(T) S) *Lazy[S] {
	return New(func() S {
		return builder(l.Value())
	})
}
