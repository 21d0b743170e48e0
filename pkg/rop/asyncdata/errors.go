package asyncdata

import (
	"errors"
	"fmt"
)

var (
	ErrNotReady        = errors.New("trying to access async data before it is ready")
	ErrNotSingleValued = errors.New("data is not single-valued")
	ErrNotFailed       = errors.New("async data holds no failure")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// RangeError reports an index outside the loaded sequence. It matches
// ErrIndexOutOfRange with errors.Is.
type RangeError struct {
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("index %d is too small", e.Index)
	}
	return fmt.Sprintf("index %d is too large for length %d", e.Index, e.Length)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func notReady(s Status) error {
	return fmt.Errorf("%w: status is %s", ErrNotReady, s)
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return &RangeError{Index: index, Length: length}
	}
	return nil
}
