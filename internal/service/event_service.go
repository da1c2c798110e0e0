package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/spec-kit/event-booking/internal/domain"
	"github.com/spec-kit/event-booking/internal/events"
	"github.com/spec-kit/event-booking/internal/repository"
	apperrors "github.com/spec-kit/event-booking/pkg/util"
)

// EventView is an event enriched with the derived fields the catalog
// exposes: tickets booked, seats remaining and status.
type EventView struct {
	Event         domain.Event
	TicketsBooked int
	Remaining     int
	Status        domain.EventStatus
}

// EventCreateInput describes event creation payload.
type EventCreateInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	Capacity    int
}

// EventService coordinates the event catalog.
type EventService struct {
	events     repository.EventRepository
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// EventDependencies bundles requirements for the event service.
type EventDependencies struct {
	EventRepo   repository.EventRepository
	CommentRepo repository.CommentRepository
	Dispatcher  events.Dispatcher
}

// NewEventService constructs the service.
func NewEventService(deps EventDependencies) *EventService {
	return &EventService{
		events:     deps.EventRepo,
		comments:   deps.CommentRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// CreateEvent validates input and persists a new event with zero tickets
// sold, returning the derived catalog view.
func (s *EventService) CreateEvent(ctx context.Context, ownerID string, input EventCreateInput) (*EventView, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	details := map[string]any{}
	if title == "" {
		details["title"] = "required"
	} else if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		details["title"] = "must be at most 120 characters"
	}
	if description == "" {
		details["description"] = "required"
	}
	if input.StartsAt.IsZero() {
		details["starts_at"] = "required"
	}
	if input.Capacity < domain.MinCapacity || input.Capacity > domain.MaxCapacity {
		details["capacity"] = "must be between 1 and 100000"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid event", details)
	}

	event := &domain.Event{
		Title:       title,
		Description: description,
		StartsAt:    input.StartsAt,
		Capacity:    input.Capacity,
		OwnerID:     &ownerID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventCreated,
		Subject: event.ID,
		ActorID: ownerID,
		Payload: events.EventCreatedPayload{
			Title:    event.Title,
			StartsAt: event.StartsAt,
			Capacity: event.Capacity,
		},
	})

	return &EventView{
		Event:     *event,
		Remaining: event.Capacity,
		Status:    event.Status(0, s.now()),
	}, nil
}

// ListEvents returns all events ordered by ascending date with derived
// status. Status is recomputed against the clock on every call.
func (s *EventService) ListEvents(ctx context.Context) ([]EventView, error) {
	sales, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]EventView, 0, len(sales))
	for _, es := range sales {
		views = append(views, EventView{
			Event:         es.Event,
			TicketsBooked: es.TicketsBooked,
			Remaining:     es.Event.Remaining(es.TicketsBooked),
			Status:        es.Event.Status(es.TicketsBooked, now),
		})
	}
	return views, nil
}

// GetEvent returns one event with derived fields and its comments,
// newest first.
func (s *EventService) GetEvent(ctx context.Context, id string) (*EventView, []domain.Comment, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, apperrors.NewNotFound("event", nil)
		}
		return nil, nil, err
	}

	booked, err := s.events.TicketsBooked(ctx, event.ID)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.comments.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, nil, err
	}

	view := &EventView{
		Event:         *event,
		TicketsBooked: booked,
		Remaining:     event.Remaining(booked),
		Status:        event.Status(booked, s.now()),
	}
	return view, comments, nil
}

func (s *EventService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
