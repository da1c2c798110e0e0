package domain

import "time"

// MaxCommentLength bounds the comment body.
const MaxCommentLength = 500

// Comment is an append-only discussion entry on an event. AuthorName is
// joined from the users table on read.
type Comment struct {
	ID         string
	EventID    string
	UserID     string
	AuthorName string
	Body       string
	CreatedAt  time.Time
}
