package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups that miss.
var ErrNotFound = errors.New("not found")

// ValidationError reports a value rejected at construction time.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// CapacityError reports a partition that would overflow its disk.
type CapacityError struct {
	Requested int
	Free      int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("partition of %d GiB exceeds remaining disk space (%d GiB free)", e.Requested, e.Free)
}
