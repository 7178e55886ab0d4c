package lists

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by the positional methods when the
	// index falls outside the range they accept.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyCollection is returned when popping or peeking an empty list.
	ErrEmptyCollection = errors.New("empty collection")
)

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
}
