package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCreated   EventType = "event_created"
	BookingCreated EventType = "booking_created"
	CommentPosted  EventType = "comment_posted"
)

// Event represents a domain event emitted by services. Subject is the id
// of the catalog event the action happened on; ActorID is the user who
// performed it.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EventCreatedPayload payload.
type EventCreatedPayload struct {
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	Capacity int       `json:"capacity"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID string `json:"booking_id"`
	Quantity  int    `json:"quantity"`
}

// CommentPostedPayload payload.
type CommentPostedPayload struct {
	CommentID   string `json:"comment_id"`
	BodyPreview string `json:"body_preview"`
}
