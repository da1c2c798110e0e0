package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-booking/internal/api/dto"
	"github.com/spec-kit/event-booking/internal/auth"
	"github.com/spec-kit/event-booking/internal/service"
	apperrors "github.com/spec-kit/event-booking/pkg/util"
)

// AccountsHandler exposes registration, login, logout and profile.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accountService}
}

// Register handles POST /auth/register.
func (h *AccountsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.accounts.Register(c.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewUserResponse(user),
	})
}

// Login handles POST /auth/login. Success sets the session cookie.
func (h *AccountsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, expiresAt, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(auth.SessionCookie(token, expiresAt))
	return c.JSON(fiber.Map{
		"data": dto.NewUserResponse(user),
	})
}

// Logout handles POST /auth/logout. Clears the session and the cookie.
func (h *AccountsHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.accounts.Logout(c.Context(), principal.SessionID); err != nil {
		return err
	}

	c.Cookie(auth.ExpiredSessionCookie())
	return c.SendStatus(http.StatusNoContent)
}

// Me handles GET /me.
func (h *AccountsHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{
		"data": dto.NewUserResponse(principal.User),
	})
}
