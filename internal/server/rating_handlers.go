package server

import (
	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitRating handles POST /api/exchanges/:id/rating
// @Summary Rate a completed exchange
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exchange ID"
// @Param request body object{rated_user_id=int,rating=int,review=string} true "Rating"
// @Success 201 {object} models.Rating
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /exchanges/{id}/rating [post]
func (s *Server) SubmitRating(c *fiber.Ctx) error {
	userID := currentUserID(c)
	exchangeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		RatedUserID uint   `json:"rated_user_id"`
		Rating      int    `json:"rating"`
		Review      string `json:"review"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.RatedUserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("rated_user_id is required"))
	}

	rating, err := s.ratingService.Submit(c.Context(), exchangeID, userID, req.RatedUserID, req.Rating, req.Review)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}

// GetRatingStatus handles GET /api/exchanges/:id/rating
func (s *Server) GetRatingStatus(c *fiber.Ctx) error {
	userID := currentUserID(c)
	exchangeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rated, err := s.ratingService.HasRated(c.Context(), exchangeID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"rated": rated})
}
