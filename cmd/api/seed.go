package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/event-booking/internal/auth"
	"github.com/spec-kit/event-booking/internal/config"
	"github.com/spec-kit/event-booking/internal/domain"
	"github.com/spec-kit/event-booking/internal/repository"
)

// seedDemoData inserts a demo account, one upcoming and one past event,
// a booking and a comment. Skipped entirely when the demo account exists,
// so running it twice is harmless.
func seedDemoData(
	ctx context.Context,
	cfg *config.Config,
	users repository.UserRepository,
	eventsRepo repository.EventRepository,
	bookings repository.BookingRepository,
	comments repository.CommentRepository,
	logger *zap.Logger,
) error {
	const demoEmail = "demo@example.com"

	if _, err := users.GetByEmail(ctx, demoEmail); err == nil {
		logger.Info("demo data already present; skipping seed")
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword("password123", cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	user := &domain.User{
		Email:        demoEmail,
		Name:         "Demo User",
		PasswordHash: hash,
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}

	upcoming := &domain.Event{
		Title:       "Campus Music Night",
		Description: "Live bands and open mic.",
		StartsAt:    time.Now().AddDate(0, 0, 5),
		Capacity:    100,
		OwnerID:     &user.ID,
	}
	if err := eventsRepo.Create(ctx, upcoming); err != nil {
		return err
	}

	past := &domain.Event{
		Title:       "Orientation Fair",
		Description: "Clubs, stalls and freebies.",
		StartsAt:    time.Now().AddDate(0, 0, -3),
		Capacity:    80,
		OwnerID:     &user.ID,
	}
	if err := eventsRepo.Create(ctx, past); err != nil {
		return err
	}

	booking := &domain.Booking{
		EventID:  upcoming.ID,
		UserID:   user.ID,
		Quantity: 2,
	}
	if err := bookings.Book(ctx, booking); err != nil {
		return err
	}

	comment := &domain.Comment{
		EventID: upcoming.ID,
		UserID:  user.ID,
		Body:    "Can't wait!",
	}
	if err := comments.Create(ctx, comment); err != nil {
		return err
	}

	logger.Info("seed data inserted",
		zap.String("user", demoEmail),
		zap.String("upcoming_event", upcoming.ID),
		zap.String("past_event", past.ID))
	return nil
}
