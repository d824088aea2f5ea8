package record

import (
	"errors"
	"fmt"
)

// ErrAllocation is the only failure kind of a Factory.
var ErrAllocation = errors.New("record allocation failed")

// AllocationError reports that storage for a record could not be obtained.
type AllocationError struct {
	Size int   // bytes requested
	Err  error // allocator's cause
}

func (e *AllocationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %d bytes", ErrAllocation, e.Size)
	}
	return fmt.Sprintf("%s: %d bytes: %v", ErrAllocation, e.Size, e.Err)
}

// Is matches ErrAllocation.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

func (e *AllocationError) Unwrap() error { return e.Err }
