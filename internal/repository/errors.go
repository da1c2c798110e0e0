package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert trips the unique email
// constraint, covering registrations that race past the pre-check.
var ErrDuplicateEmail = errors.New("email already registered")

// InsufficientCapacityError rejects a booking that does not fit within the
// event's remaining capacity. Remaining is the seat count observed while
// holding the event row lock.
type InsufficientCapacityError struct {
	Remaining int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("only %d ticket(s) remaining", e.Remaining)
}
