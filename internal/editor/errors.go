package editor

import (
	"errors"
	"fmt"
)

// Editor errors.
var (
	// ErrInvalidWindow indicates an operation on a destroyed or unknown window.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrBufferNotFound indicates the buffer id does not refer to an open buffer.
	ErrBufferNotFound = errors.New("buffer not found")

	// ErrNoWindow indicates no window is available for the operation.
	ErrNoWindow = errors.New("no window")

	// ErrOpVetoed indicates a pre-operation hook cancelled the operation.
	ErrOpVetoed = errors.New("operation vetoed by hook")
)

// OpError wraps an error with the host operation and target it occurred on.
type OpError struct {
	Op     string // operation name, e.g. "show-buffer"
	Target string // window or buffer id
	Err    error
}

// Error implements error.
func (e *OpError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}
