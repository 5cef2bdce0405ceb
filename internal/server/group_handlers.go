package server

import (
	"github.com/chandanraj-03/skill-bartering-system/internal/featureflags"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateGroupExchange handles POST /api/exchanges/groups
// @Summary Open a group skill exchange
// @Tags exchanges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{skill_id=int,title=string,description=string,max_participants=int} true "Group exchange"
// @Success 201 {object} models.Exchange
// @Failure 400 {object} models.ErrorResponse
// @Router /exchanges/groups [post]
func (s *Server) CreateGroupExchange(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if !s.featureFlags.EnabledDefault(featureflags.FlagGroupExchanges, userID, true) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Route", c.Path()))
	}

	var req struct {
		SkillID         uint   `json:"skill_id"`
		Title           string `json:"title"`
		Description     string `json:"description"`
		MaxParticipants int    `json:"max_participants"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	exchange, err := s.exchangeService.CreateGroup(c.Context(), userID, req.SkillID, req.Title, req.Description, req.MaxParticipants)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exchange)
}

// GetMyGroupExchanges handles GET /api/exchanges/groups
func (s *Server) GetMyGroupExchanges(c *fiber.Ctx) error {
	userID := currentUserID(c)

	groups, err := s.exchangeService.ListGroupsForUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetOpenGroupExchanges handles GET /api/exchanges/groups/open
func (s *Server) GetOpenGroupExchanges(c *fiber.Ctx) error {
	userID := currentUserID(c)

	groups, err := s.exchangeService.ListOpenGroups(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// JoinGroupExchange handles POST /api/exchanges/groups/:id/join
func (s *Server) JoinGroupExchange(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		SkillID uint `json:"skill_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.SkillID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("skill_id is required"))
	}

	participant, err := s.exchangeService.JoinGroup(c.Context(), id, userID, req.SkillID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(participant)
}

// ConfirmParticipation handles POST /api/exchanges/participants/:participantId/confirm
func (s *Server) ConfirmParticipation(c *fiber.Ctx) error {
	userID := currentUserID(c)
	participantID, err := s.parseID(c, "participantId")
	if err != nil {
		return nil
	}

	if err := s.exchangeService.ConfirmParticipation(c.Context(), participantID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Participation confirmed"})
}

// DeclineParticipation handles POST /api/exchanges/participants/:participantId/decline
func (s *Server) DeclineParticipation(c *fiber.Ctx) error {
	userID := currentUserID(c)
	participantID, err := s.parseID(c, "participantId")
	if err != nil {
		return nil
	}

	if err := s.exchangeService.DeclineParticipation(c.Context(), participantID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Participation declined"})
}

// GetParticipants handles GET /api/exchanges/:id/participants
func (s *Server) GetParticipants(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	participants, err := s.exchangeService.Participants(c.Context(), id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"participants": participants})
}
