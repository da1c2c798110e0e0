package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spec-kit/event-booking/internal/domain"
	"github.com/spec-kit/event-booking/internal/events"
	"github.com/spec-kit/event-booking/internal/repository"
)

// memStore is an in-memory stand-in for the Postgres repositories. Its
// Book method mirrors the capacity contract of the real implementation.
type memStore struct {
	users    map[string]*domain.User
	events   map[string]*domain.Event
	bookings []domain.Booking
	comments []domain.Comment
	seq      int
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[string]*domain.User),
		events: make(map[string]*domain.Event),
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

// UserRepository

func (m *memStore) Create(ctx context.Context, user *domain.User) error {
	// unique email, as the schema enforces
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = m.nextID("user")
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *memStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

// eventStore adapts memStore to repository.EventRepository. A separate
// wrapper avoids method-name clashes with the user repository.
type eventStore struct{ m *memStore }

func (s eventStore) Create(ctx context.Context, event *domain.Event) error {
	event.ID = s.m.nextID("event")
	event.CreatedAt = time.Now()
	s.m.events[event.ID] = event
	return nil
}

func (s eventStore) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, ok := s.m.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (s eventStore) List(ctx context.Context) ([]repository.EventSales, error) {
	result := make([]repository.EventSales, 0, len(s.m.events))
	for _, event := range s.m.events {
		booked, _ := s.TicketsBooked(ctx, event.ID)
		result = append(result, repository.EventSales{Event: *event, TicketsBooked: booked})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Event.StartsAt.Before(result[j].Event.StartsAt)
	})
	return result, nil
}

func (s eventStore) TicketsBooked(ctx context.Context, eventID string) (int, error) {
	total := 0
	for _, booking := range s.m.bookings {
		if booking.EventID == eventID {
			total += booking.Quantity
		}
	}
	return total, nil
}

// bookingStore adapts memStore to repository.BookingRepository.
type bookingStore struct{ m *memStore }

func (s bookingStore) Book(ctx context.Context, booking *domain.Booking) error {
	event, ok := s.m.events[booking.EventID]
	if !ok {
		return repository.ErrNotFound
	}
	booked, _ := eventStore{s.m}.TicketsBooked(ctx, booking.EventID)
	remaining := event.Capacity - booked
	if remaining < 0 {
		remaining = 0
	}
	if booking.Quantity > remaining {
		return &repository.InsufficientCapacityError{Remaining: remaining}
	}
	booking.ID = s.m.nextID("booking")
	booking.CreatedAt = time.Now()
	s.m.bookings = append(s.m.bookings, *booking)
	return nil
}

func (s bookingStore) ListByUser(ctx context.Context, userID string) ([]domain.BookingHistoryEntry, error) {
	var result []domain.BookingHistoryEntry
	for _, booking := range s.m.bookings {
		if booking.UserID != userID {
			continue
		}
		entry := domain.BookingHistoryEntry{Booking: booking}
		if event, ok := s.m.events[booking.EventID]; ok {
			entry.Event = *event
		}
		result = append(result, entry)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Booking.CreatedAt.After(result[j].Booking.CreatedAt)
	})
	return result, nil
}

// commentStore adapts memStore to repository.CommentRepository.
type commentStore struct{ m *memStore }

func (s commentStore) Create(ctx context.Context, comment *domain.Comment) error {
	comment.ID = s.m.nextID("comment")
	comment.CreatedAt = time.Now()
	if user, ok := s.m.users[comment.UserID]; ok {
		comment.AuthorName = user.Name
	}
	s.m.comments = append(s.m.comments, *comment)
	return nil
}

func (s commentStore) ListByEvent(ctx context.Context, eventID string) ([]domain.Comment, error) {
	var result []domain.Comment
	for _, comment := range s.m.comments {
		if comment.EventID == eventID {
			result = append(result, comment)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// fakeSessions records session create/delete calls.
type fakeSessions struct {
	created map[string]string
	deleted []string
	seq     int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{created: make(map[string]string)}
}

func (f *fakeSessions) Create(ctx context.Context, userID string) (string, error) {
	f.seq++
	id := fmt.Sprintf("session-%d", f.seq)
	f.created[id] = userID
	return id, nil
}

func (f *fakeSessions) Delete(ctx context.Context, sessionID string) error {
	f.deleted = append(f.deleted, sessionID)
	delete(f.created, sessionID)
	return nil
}

// recordingDispatcher collects published domain events.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}
