package dto

import (
	"time"

	"github.com/spec-kit/event-booking/internal/domain"
)

// PostCommentRequest payload for posting a comment.
type PostCommentRequest struct {
	Body string `json:"body"`
}

// CommentResponse is the view of a comment entry.
type CommentResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCommentResponse maps a domain comment.
func NewCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID,
		AuthorName: comment.AuthorName,
		Body:       comment.Body,
		CreatedAt:  comment.CreatedAt,
	}
}
