package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-booking/internal/domain"
)

// BookingRepository encapsulates the ticket ledger. Entries are append-only.
type BookingRepository interface {
	// Book appends a ledger entry if the requested quantity fits within the
	// event's remaining capacity. The check and the insert run in one
	// transaction holding a row lock on the event, so two concurrent
	// requests cannot jointly overbook.
	Book(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]domain.BookingHistoryEntry, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates the repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) Book(ctx context.Context, booking *domain.Booking) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// Lock the event row. Concurrent bookings for the same event serialize
	// here until this transaction commits or rolls back.
	var capacity int
	err = tx.QueryRow(ctx,
		`SELECT capacity FROM events WHERE id=$1 FOR UPDATE`,
		booking.EventID,
	).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock event row: %w", err)
	}

	var booked int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0)::int FROM bookings WHERE event_id=$1`,
		booking.EventID,
	).Scan(&booked)
	if err != nil {
		return fmt.Errorf("sum booked quantity: %w", err)
	}

	remaining := capacity - booked
	if remaining < 0 {
		remaining = 0
	}
	if booking.Quantity > remaining {
		err = &InsufficientCapacityError{Remaining: remaining}
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO bookings (event_id, user_id, quantity)
         VALUES ($1, $2, $3)
         RETURNING id, created_at`,
		booking.EventID,
		booking.UserID,
		booking.Quantity,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.BookingHistoryEntry, error) {
	const query = `
        SELECT b.id, b.event_id, b.user_id, b.quantity, b.created_at,
               e.id, e.title, e.description, e.starts_at, e.capacity, e.owner_id, e.created_at
        FROM bookings b
        JOIN events e ON e.id = b.event_id
        WHERE b.user_id = $1
        ORDER BY b.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.BookingHistoryEntry
	for rows.Next() {
		var entry domain.BookingHistoryEntry
		if err := rows.Scan(
			&entry.Booking.ID,
			&entry.Booking.EventID,
			&entry.Booking.UserID,
			&entry.Booking.Quantity,
			&entry.Booking.CreatedAt,
			&entry.Event.ID,
			&entry.Event.Title,
			&entry.Event.Description,
			&entry.Event.StartsAt,
			&entry.Event.Capacity,
			&entry.Event.OwnerID,
			&entry.Event.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
