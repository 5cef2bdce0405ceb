package server

import (
	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateExchange handles POST /api/exchanges
// @Summary Propose a 1:1 skill exchange
// @Tags exchanges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{recipient_id=int,initiator_skill_id=int,recipient_skill_id=int} true "Exchange proposal"
// @Success 201 {object} models.Exchange
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /exchanges [post]
func (s *Server) CreateExchange(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		RecipientID      uint `json:"recipient_id"`
		InitiatorSkillID uint `json:"initiator_skill_id"`
		RecipientSkillID uint `json:"recipient_skill_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.RecipientID == 0 || req.InitiatorSkillID == 0 || req.RecipientSkillID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("recipient_id, initiator_skill_id, and recipient_skill_id are required"))
	}

	exchange, err := s.exchangeService.Propose(c.Context(), userID, req.RecipientID, req.InitiatorSkillID, req.RecipientSkillID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exchange)
}

// GetMyExchanges handles GET /api/exchanges
func (s *Server) GetMyExchanges(c *fiber.Ctx) error {
	userID := currentUserID(c)

	exchanges, err := s.exchangeService.ListForUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"exchanges": exchanges})
}

// GetExchange handles GET /api/exchanges/:id
func (s *Server) GetExchange(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	exchange, err := s.exchangeService.Get(c.Context(), id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(exchange)
}

// AcceptExchange handles POST /api/exchanges/:id/accept
func (s *Server) AcceptExchange(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.exchangeService.Accept(c.Context(), id, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exchange accepted"})
}

// RejectExchange handles POST /api/exchanges/:id/reject
func (s *Server) RejectExchange(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.exchangeService.Reject(c.Context(), id, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exchange rejected"})
}

// CompleteExchange handles POST /api/exchanges/:id/complete
// @Summary Complete an accepted exchange
// @Description Marks the exchange completed and credits both parties
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exchange ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /exchanges/{id}/complete [post]
func (s *Server) CompleteExchange(c *fiber.Ctx) error {
	userID := currentUserID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.exchangeService.Complete(c.Context(), id, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exchange completed"})
}
