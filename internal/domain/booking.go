package domain

import "time"

// Quantity bounds for a single booking.
const (
	MinBookingQuantity = 1
	MaxBookingQuantity = 100
)

// Booking is one immutable entry in the ticket ledger. The sum of
// quantities for an event never exceeds that event's capacity.
type Booking struct {
	ID        string
	EventID   string
	UserID    string
	Quantity  int
	CreatedAt time.Time
}

// BookingHistoryEntry pairs a booking with the event it was made against.
type BookingHistoryEntry struct {
	Booking Booking
	Event   Event
}
