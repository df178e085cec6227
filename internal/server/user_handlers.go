package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"warbler/internal/models"
	"warbler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	q := strings.TrimSpace(c.Query("q"))
	page := parsePagination(c, 100)

	users, err := s.userService.ListUsers(ctx, q, page.Limit, page.Offset)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
				"error": "Request timeout",
			})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.Profile(c.Context(), id, 10)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	s.attachFollowCounts(c, user)

	return c.JSON(user)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	s.attachFollowCounts(c, user)

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	var req struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		Bio            string `json:"bio"`
		Location       string `json:"location"`
		ImageURL       string `json:"image_url"`
		HeaderImageURL string `json:"header_image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID:         userID,
		Username:       req.Username,
		Email:          req.Email,
		Bio:            req.Bio,
		Location:       req.Location,
		ImageURL:       req.ImageURL,
		HeaderImageURL: req.HeaderImageURL,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}

// DeleteMyAccount handles DELETE /api/users/me
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.userService.DeleteAccount(c.Context(), userID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Account deleted"})
}

// GetUserMessages handles GET /api/users/:id/messages
func (s *Server) GetUserMessages(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	viewerID, _ := s.optionalUserID(c)

	if _, err := s.userService.GetUserByID(c.Context(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	messages, err := s.messageService.ListByUser(c.Context(), id, page.Limit, page.Offset, viewerID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(messages)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)

	if _, err := s.userService.GetUserByID(c.Context(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	users, err := s.followRepo.GetFollowing(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(users)
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)

	if _, err := s.userService.GetUserByID(c.Context(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	users, err := s.followRepo.GetFollowers(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(users)
}

// GetUserLikes handles GET /api/users/:id/likes
func (s *Server) GetUserLikes(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	if _, err := s.userService.GetUserByID(c.Context(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	messages, err := s.messageService.LikedMessages(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(messages)
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followerID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if targetID == followerID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("You cannot follow yourself"))
	}

	if _, err := s.userService.GetUserByID(c.Context(), targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	if err := s.followRepo.Follow(c.Context(), followerID, targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Now following"})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followerID := currentUserID(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followRepo.Unfollow(c.Context(), followerID, targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed"})
}

// attachFollowCounts fills the computed follower/following counters on a
// profile response. Count failures are logged by the GORM layer and the
// profile is still returned.
func (s *Server) attachFollowCounts(c *fiber.Ctx, user *models.User) {
	if following, err := s.followRepo.CountFollowing(c.Context(), user.ID); err == nil {
		user.FollowingCount = int(following)
	}
	if followers, err := s.followRepo.CountFollowers(c.Context(), user.ID); err == nil {
		user.FollowersCount = int(followers)
	}
}
