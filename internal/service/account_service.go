package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spec-kit/event-booking/internal/auth"
	"github.com/spec-kit/event-booking/internal/domain"
	"github.com/spec-kit/event-booking/internal/repository"
	apperrors "github.com/spec-kit/event-booking/pkg/util"
)

// Name and password limits for registration.
const (
	minNameLength     = 2
	maxNameLength     = 80
	minPasswordLength = 6
)

// invalidCredentials is the single message for every login failure, so a
// caller cannot distinguish an unknown email from a wrong password.
const invalidCredentials = "invalid email or password"

// SessionManager abstracts session establishment and teardown.
// *auth.SessionStore is the Redis-backed implementation.
type SessionManager interface {
	Create(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// AccountService coordinates registration, login and logout.
type AccountService struct {
	users      repository.UserRepository
	sessions   SessionManager
	tokens     *auth.TokenManager
	bcryptCost int
}

// AccountDependencies bundles requirements for the account service.
type AccountDependencies struct {
	UserRepo     repository.UserRepository
	SessionStore SessionManager
	TokenManager *auth.TokenManager
	BcryptCost   int
}

// NewAccountService builds the service.
func NewAccountService(deps AccountDependencies) *AccountService {
	return &AccountService{
		users:      deps.UserRepo,
		sessions:   deps.SessionStore,
		tokens:     deps.TokenManager,
		bcryptCost: deps.BcryptCost,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AccountService) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	details := map[string]any{}
	if !isValidEmail(email) {
		details["email"] = "must be a valid email address"
	}
	if nameLen := utf8.RuneCountInString(name); nameLen < minNameLength || nameLen > maxNameLength {
		details["name"] = "must be between 2 and 80 characters"
	}
	if len(password) < minPasswordLength {
		details["password"] = "must be at least 6 characters"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid registration", details)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and establishes a session. Every failure
// path returns the same generic rejection.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentials)
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentials)
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, expiresAt, err := s.tokens.GenerateSessionToken(sessionID, user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Logout tears down the session behind the cookie.
func (s *AccountService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// isValidEmail does a basic structural check.
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return len(parts[0]) > 0 && strings.Contains(parts[1], ".")
}
