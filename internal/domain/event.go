package domain

import "time"

// EventStatus is derived from the clock and the booking ledger on every
// read; it is never persisted.
type EventStatus string

const (
	EventStatusOpen     EventStatus = "OPEN"
	EventStatusSoldOut  EventStatus = "SOLD_OUT"
	EventStatusInactive EventStatus = "INACTIVE"
)

// Limits for event creation, mirrored by CHECK constraints in the schema.
const (
	MaxTitleLength = 120
	MinCapacity    = 1
	MaxCapacity    = 100000
)

// Event is a bookable happening with a fixed ticket capacity.
type Event struct {
	ID          string
	Title       string
	Description string
	StartsAt    time.Time
	Capacity    int
	OwnerID     *string
	CreatedAt   time.Time
}

// Status derives the event state from the current time and the total
// quantity already booked. A past event is Inactive regardless of capacity.
func (e *Event) Status(booked int, now time.Time) EventStatus {
	if e.StartsAt.Before(now) {
		return EventStatusInactive
	}
	if booked >= e.Capacity {
		return EventStatusSoldOut
	}
	return EventStatusOpen
}

// Remaining returns the seats still available, floored at zero.
func (e *Event) Remaining(booked int) int {
	remaining := e.Capacity - booked
	if remaining < 0 {
		return 0
	}
	return remaining
}
