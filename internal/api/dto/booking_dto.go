package dto

import (
	"time"

	"github.com/spec-kit/event-booking/internal/domain"
)

// BookTicketsRequest payload for booking tickets.
type BookTicketsRequest struct {
	Quantity int `json:"quantity"`
}

// BookingResponse is the view of a ledger entry.
type BookingResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBookingResponse maps a domain booking.
func NewBookingResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        booking.ID,
		EventID:   booking.EventID,
		Quantity:  booking.Quantity,
		CreatedAt: booking.CreatedAt,
	}
}

// BookingHistoryItem pairs a booking with its event for the history view.
type BookingHistoryItem struct {
	Booking BookingResponse `json:"booking"`
	Event   EventSummary    `json:"event"`
}

// NewBookingHistoryItem maps a history entry.
func NewBookingHistoryItem(entry domain.BookingHistoryEntry) BookingHistoryItem {
	return BookingHistoryItem{
		Booking: NewBookingResponse(&entry.Booking),
		Event:   NewEventSummary(entry.Event),
	}
}
