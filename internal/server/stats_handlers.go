package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyStats handles GET /api/stats/me
// @Summary Get own dashboard stats
// @Description Skill and exchange counts, community points, and badge
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserStats
// @Router /stats/me [get]
func (s *Server) GetMyStats(c *fiber.Ctx) error {
	userID := currentUserID(c)

	stats, err := s.statsService.Stats(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}

// GetMyAnalytics handles GET /api/stats/me/analytics
func (s *Server) GetMyAnalytics(c *fiber.Ctx) error {
	userID := currentUserID(c)

	analytics, err := s.statsService.Analytics(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(analytics)
}
