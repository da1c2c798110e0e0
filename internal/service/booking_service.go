package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/event-booking/internal/domain"
	"github.com/spec-kit/event-booking/internal/events"
	"github.com/spec-kit/event-booking/internal/repository"
	apperrors "github.com/spec-kit/event-booking/pkg/util"
)

// BookingService coordinates the ticket ledger.
type BookingService struct {
	events     repository.EventRepository
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// BookingDependencies bundles requirements for the booking service.
type BookingDependencies struct {
	EventRepo   repository.EventRepository
	BookingRepo repository.BookingRepository
	Dispatcher  events.Dispatcher
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		events:     deps.EventRepo,
		bookings:   deps.BookingRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// BookTickets appends a ledger entry for the user if the event is still
// upcoming and the quantity fits within remaining capacity. The capacity
// check runs inside the repository transaction under a row lock, so a
// losing concurrent request gets a normal rejection rather than an
// overbooked event.
func (s *BookingService) BookTickets(ctx context.Context, userID, eventID string, quantity int) (*domain.Booking, error) {
	if quantity < domain.MinBookingQuantity || quantity > domain.MaxBookingQuantity {
		return nil, apperrors.NewValidationError("invalid booking request",
			map[string]any{"quantity": "must be between 1 and 100"})
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("event", nil)
		}
		return nil, err
	}
	if event.StartsAt.Before(s.now()) {
		return nil, apperrors.NewValidationError("event has already occurred", nil)
	}

	booking := &domain.Booking{
		EventID:  eventID,
		UserID:   userID,
		Quantity: quantity,
	}
	if err := s.bookings.Book(ctx, booking); err != nil {
		var capErr *repository.InsufficientCapacityError
		if errors.As(err, &capErr) {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("only %d ticket(s) remaining", capErr.Remaining),
				map[string]any{"remaining": capErr.Remaining})
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("event", nil)
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.BookingCreated,
		Subject: eventID,
		ActorID: userID,
		Payload: events.BookingCreatedPayload{
			BookingID: booking.ID,
			Quantity:  booking.Quantity,
		},
	})
	return booking, nil
}

// History returns the user's bookings joined with their events, newest first.
func (s *BookingService) History(ctx context.Context, userID string) ([]domain.BookingHistoryEntry, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, event events.Event) {
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
