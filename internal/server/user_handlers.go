package server

import (
	"github.com/chandanraj-03/skill-bartering-system/internal/featureflags"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	profile, err := s.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		FullName string `json:"full_name"`
		Bio      string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), userID, req.FullName, req.Bio)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfileImage handles PUT /api/users/me/profile-image
func (s *Server) UpdateProfileImage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Image string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.UpdateProfileImage(c.Context(), userID, req.Image); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Profile image updated"})
}

// UpdateSocialLinks handles PUT /api/users/me/social-links
func (s *Server) UpdateSocialLinks(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req models.SocialLinks
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.UpdateSocialLinks(c.Context(), userID, req); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Social links updated"})
}

// DeleteMyAccount handles DELETE /api/users/me
// @Summary Delete own account
// @Description Permanently removes the account and everything owned by it
// @Tags users
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Router /users/me [delete]
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.userService.DeleteAccount(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account deleted"})
}

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetRecommendedUsers handles GET /api/users/recommended
func (s *Server) GetRecommendedUsers(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if !s.featureFlags.EnabledDefault(featureflags.FlagRecommendations, userID, true) {
		return c.JSON(fiber.Map{"users": []models.User{}})
	}

	limit := c.QueryInt("limit", 10)
	users, err := s.userService.RecommendedUsers(c.Context(), userID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUserRatings handles GET /api/users/:id/ratings
func (s *Server) GetUserRatings(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ratings, err := s.ratingService.ListForUser(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ratings": ratings})
}
