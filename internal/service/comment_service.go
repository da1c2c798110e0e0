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

// CommentService coordinates the append-only comment log.
type CommentService struct {
	events     repository.EventRepository
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// CommentDependencies bundles requirements for the comment service.
type CommentDependencies struct {
	EventRepo   repository.EventRepository
	CommentRepo repository.CommentRepository
	Dispatcher  events.Dispatcher
}

// NewCommentService constructs the service.
func NewCommentService(deps CommentDependencies) *CommentService {
	return &CommentService{
		events:     deps.EventRepo,
		comments:   deps.CommentRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// PostComment appends a comment to an existing event.
func (s *CommentService) PostComment(ctx context.Context, userID, eventID, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.NewValidationError("comment body required", nil)
	}
	// limits count characters, matching the char_length CHECK in the schema
	if utf8.RuneCountInString(body) > domain.MaxCommentLength {
		return nil, apperrors.NewValidationError("comment too long",
			map[string]any{"body": "must be at most 500 characters"})
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("event", nil)
		}
		return nil, err
	}

	comment := &domain.Comment{
		EventID: eventID,
		UserID:  userID,
		Body:    body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.CommentPosted,
		Subject: eventID,
		ActorID: userID,
		Payload: events.CommentPostedPayload{
			CommentID:   comment.ID,
			BodyPreview: bodyPreview(comment.Body, 80),
		},
	})
	return comment, nil
}

func (s *CommentService) publish(ctx context.Context, event events.Event) {
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

func bodyPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
