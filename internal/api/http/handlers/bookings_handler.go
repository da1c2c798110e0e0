package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-booking/internal/api/dto"
	"github.com/spec-kit/event-booking/internal/auth"
	"github.com/spec-kit/event-booking/internal/service"
	apperrors "github.com/spec-kit/event-booking/pkg/util"
)

// BookingsHandler exposes the ticket ledger.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookingService}
}

// Book handles POST /events/:id/book.
func (h *BookingsHandler) Book(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.BookTicketsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.bookings.BookTickets(c.Context(), principal.User.ID, c.Params("id"), req.Quantity)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// History handles GET /me/bookings. Newest first.
func (h *BookingsHandler) History(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	entries, err := h.bookings.History(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}

	result := make([]dto.BookingHistoryItem, 0, len(entries))
	for _, entry := range entries {
		result = append(result, dto.NewBookingHistoryItem(entry))
	}
	return c.JSON(fiber.Map{"data": result})
}
