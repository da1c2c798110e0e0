package dto

import (
	"time"

	"github.com/spec-kit/event-booking/internal/domain"
	"github.com/spec-kit/event-booking/internal/service"
)

// CreateEventRequest payload for event creation.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	Capacity    int       `json:"capacity"`
}

// EventResponse is the catalog view of an event with derived fields.
type EventResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartsAt      time.Time `json:"starts_at"`
	Capacity      int       `json:"capacity"`
	TicketsBooked int       `json:"tickets_booked"`
	Remaining     int       `json:"remaining"`
	Status        string    `json:"status"`
}

// NewEventResponse maps a derived event view.
func NewEventResponse(view service.EventView) EventResponse {
	return EventResponse{
		ID:            view.Event.ID,
		Title:         view.Event.Title,
		Description:   view.Event.Description,
		StartsAt:      view.Event.StartsAt,
		Capacity:      view.Event.Capacity,
		TicketsBooked: view.TicketsBooked,
		Remaining:     view.Remaining,
		Status:        string(view.Status),
	}
}

// EventSummary is the compact event shape embedded in booking history.
type EventSummary struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
}

// NewEventSummary maps a domain event.
func NewEventSummary(event domain.Event) EventSummary {
	return EventSummary{
		ID:       event.ID,
		Title:    event.Title,
		StartsAt: event.StartsAt,
	}
}
