package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-booking/internal/api/dto"
	"github.com/spec-kit/event-booking/internal/auth"
	"github.com/spec-kit/event-booking/internal/service"
	apperrors "github.com/spec-kit/event-booking/pkg/util"
)

// EventsHandler exposes the event catalog.
type EventsHandler struct {
	events *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{events: eventService}
}

// List handles GET /. All events, ascending by date.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	views, err := h.events.ListEvents(c.Context())
	if err != nil {
		return err
	}

	result := make([]dto.EventResponse, 0, len(views))
	for _, view := range views {
		result = append(result, dto.NewEventResponse(view))
	}
	return c.JSON(fiber.Map{"data": result})
}

// Create handles POST /events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	view, err := h.events.CreateEvent(c.Context(), principal.User.ID, service.EventCreateInput{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		Capacity:    req.Capacity,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEventResponse(*view)})
}

// Detail handles GET /events/:id. Event plus comments, newest first.
func (h *EventsHandler) Detail(c *fiber.Ctx) error {
	view, comments, err := h.events.GetEvent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	commentViews := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		commentViews = append(commentViews, dto.NewCommentResponse(&comments[i]))
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"event":    dto.NewEventResponse(*view),
			"comments": commentViews,
		},
	})
}
