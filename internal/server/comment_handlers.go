package server

import (
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/:id/comments and returns the post's
// comments, newest first.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := currentUserID(c)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comments, err := s.commentService.Create(c.Context(), postID, userID, req.Text)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(comments)
}

// DeleteComment handles DELETE /api/posts/:id/comments/:commentId. Only the
// comment's author may delete it.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := currentUserID(c)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.Delete(c.Context(), postID, commentID, userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(comments)
}
