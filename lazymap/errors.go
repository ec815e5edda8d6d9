package lazymap

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every *KeyError.
var ErrKeyNotFound = errors.New("lazymap: key not found")

// KeyError reports a read of a key the map does not hold.
type KeyError struct {
	Key any
}

// Error returns the string representation of the error.
func (e *KeyError) Error() string {
	return fmt.Sprintf("lazymap: key %v not found", e.Key)
}

// Unwrap returns ErrKeyNotFound.
func (e *KeyError) Unwrap() error { return ErrKeyNotFound }
