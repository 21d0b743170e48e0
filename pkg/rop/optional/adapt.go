package optional

// MakeOptional lifts f so it accepts an Optional. Calling the result with an
// empty Optional returns ErrNoSuchElement without calling f.
func MakeOptional[T, R any](f func(T) R) func(Optional[T]) (R, error) {
	return func(o Optional[T]) (R, error) {
		v, err := o.Get()
		if err != nil {
			var zero R
			return zero, err
		}
		return f(v), nil
	}
}

// MakeNonOptional adapts a function taking an Optional to one taking a
// plain value, wrapping the argument with Of.
func MakeNonOptional[T, R any](f func(Optional[T]) R) func(T) R {
	return func(v T) R {
		return f(Of(v))
	}
}

// Compact drops absent entries and unwraps the rest, so a map of Optionals
// serializes without null members.
func Compact[K comparable, T any](m map[K]Optional[T]) map[K]T {
	out := make(map[K]T, len(m))
	for k, o := range m {
		if o.present {
			out[k] = o.value
		}
	}
	return out
}

// Dict is a map of Optionals that serializes like Compact: absent entries
// are left out instead of written as null.
type Dict[K comparable, T any] map[K]Optional[T]

// Values returns the present values of opts in order.
func Values[T any](opts ...Optional[T]) []T {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.present {
			out = append(out, o.value)
		}
	}
	return out
}
