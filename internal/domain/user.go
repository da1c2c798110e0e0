package domain

import "time"

// User is an account that can own events, book tickets and comment.
// Accounts are immutable after registration.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
