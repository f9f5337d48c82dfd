package tasklist

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index does not address a task in the
// current sequence
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports a rejected positional operation
type IndexError struct {
	Op    string // "toggle" or "delete"
	Index int
	Len   int
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %d: %v (list has %d tasks)", e.Op, e.Index, ErrIndexOutOfRange, e.Len)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
