package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-booking/internal/domain"
)

// EventSales pairs an event with the ticket quantity already booked
// against it. The sum is computed on read, never denormalized.
type EventSales struct {
	Event         domain.Event
	TicketsBooked int
}

// EventRepository encapsulates event catalog persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]EventSales, error)
	TicketsBooked(ctx context.Context, eventID string) (int, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates the repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (title, description, starts_at, capacity, owner_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.StartsAt,
		event.Capacity,
		event.OwnerID,
	).Scan(&event.ID, &event.CreatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	const query = `
        SELECT id, title, description, starts_at, capacity, owner_id, created_at
        FROM events WHERE id=$1`

	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartsAt,
		&event.Capacity,
		&event.OwnerID,
		&event.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

// List returns all events ordered by ascending date, each with its booked
// quantity aggregated in the same query.
func (r *eventRepository) List(ctx context.Context) ([]EventSales, error) {
	const query = `
        SELECT e.id, e.title, e.description, e.starts_at, e.capacity, e.owner_id, e.created_at,
               COALESCE(SUM(b.quantity), 0)::int
        FROM events e
        LEFT JOIN bookings b ON b.event_id = e.id
        GROUP BY e.id
        ORDER BY e.starts_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []EventSales
	for rows.Next() {
		var es EventSales
		if err := rows.Scan(
			&es.Event.ID,
			&es.Event.Title,
			&es.Event.Description,
			&es.Event.StartsAt,
			&es.Event.Capacity,
			&es.Event.OwnerID,
			&es.Event.CreatedAt,
			&es.TicketsBooked,
		); err != nil {
			return nil, err
		}
		result = append(result, es)
	}
	return result, rows.Err()
}

func (r *eventRepository) TicketsBooked(ctx context.Context, eventID string) (int, error) {
	const query = `
        SELECT COALESCE(SUM(quantity), 0)::int
        FROM bookings WHERE event_id=$1`

	var booked int
	if err := r.pool.QueryRow(ctx, query, eventID).Scan(&booked); err != nil {
		return 0, err
	}
	return booked, nil
}
