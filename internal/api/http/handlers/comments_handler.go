package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-booking/internal/api/dto"
	"github.com/spec-kit/event-booking/internal/auth"
	"github.com/spec-kit/event-booking/internal/service"
	apperrors "github.com/spec-kit/event-booking/pkg/util"
)

// CommentsHandler exposes the comment log.
type CommentsHandler struct {
	comments *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(commentService *service.CommentService) *CommentsHandler {
	return &CommentsHandler{comments: commentService}
}

// Post handles POST /events/:id/comments.
func (h *CommentsHandler) Post(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PostCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	comment, err := h.comments.PostComment(c.Context(), principal.User.ID, c.Params("id"), req.Body)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}
