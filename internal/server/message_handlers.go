package server

import (
	"warbler/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTimeline handles GET /api/messages
func (s *Server) GetTimeline(c *fiber.Ctx) error {
	userID := currentUserID(c)
	page := parsePagination(c, 20)

	messages, err := s.messageService.Timeline(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(messages)
}

// CreateMessage handles POST /api/messages
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.Create(c.Context(), userID, req.Text)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetMessage handles GET /api/messages/:id
func (s *Server) GetMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)

	message, err := s.messageService.GetByID(c.Context(), id, viewerID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(message)
}

// DeleteMessage handles DELETE /api/messages/:id
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageService.Delete(c.Context(), id, userID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Message deleted"})
}

// LikeMessage handles POST /api/messages/:id/like
func (s *Server) LikeMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageService.Like(c.Context(), userID, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Message liked"})
}

// UnlikeMessage handles DELETE /api/messages/:id/like
func (s *Server) UnlikeMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.messageService.Unlike(c.Context(), userID, id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Like removed"})
}
