package lazylist

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("lazylist: index out of range")
	// ErrZeroStep is returned by SliceStep when step is zero.
	ErrZeroStep = errors.New("lazylist: slice step cannot be zero")
	// ErrRepeatTooLarge is returned by Repeat when the repeated list would
	// not fit in memory addressing.
	ErrRepeatTooLarge = errors.New("lazylist: repeat count too large")
)

// IndexError reports an index outside the list. Len is the length of the list
// at the time of the failure, which is final: an index is only rejected once
// every source that could have produced it is exhausted.
type IndexError struct {
	Index int
	Len   int
}

// Error returns the string representation of the error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("lazylist: index %d out of range [0:%d]", e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange so errors.Is works on the sentinel.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
