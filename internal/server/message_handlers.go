package server

import (
	"github.com/chandanraj-03/skill-bartering-system/internal/models"
	"github.com/chandanraj-03/skill-bartering-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /api/exchanges/:id/messages
// @Summary Send a chat message in an exchange
// @Description Sends a text message, optionally with an inline base64 attachment
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exchange ID"
// @Param request body object{recipient_id=int,message=string,attachment_name=string,attachment_data=string,attachment_type=string} true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /exchanges/{id}/messages [post]
func (s *Server) SendMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)
	exchangeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		RecipientID    uint   `json:"recipient_id"`
		Message        string `json:"message"`
		AttachmentName string `json:"attachment_name"`
		AttachmentData string `json:"attachment_data"`
		AttachmentType string `json:"attachment_type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.RecipientID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("recipient_id is required"))
	}

	var attachment *service.Attachment
	if req.AttachmentData != "" {
		attachment = &service.Attachment{
			Name:    req.AttachmentName,
			Payload: req.AttachmentData,
			Type:    req.AttachmentType,
		}
	}

	message, err := s.messageService.Send(c.Context(), exchangeID, userID, req.RecipientID, req.Message, attachment)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetMessages handles GET /api/exchanges/:id/messages
// @Summary Get an exchange's chat history
// @Description Returns the chat chronologically and marks incoming messages read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exchange ID"
// @Success 200 {object} object{messages=[]models.MessageView}
// @Failure 403 {object} models.ErrorResponse
// @Router /exchanges/{id}/messages [get]
func (s *Server) GetMessages(c *fiber.Ctx) error {
	userID := currentUserID(c)
	exchangeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	messages, err := s.messageService.History(c.Context(), exchangeID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"messages": messages})
}

// GetUnreadCount handles GET /api/messages/unread
func (s *Server) GetUnreadCount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	count, err := s.messageService.UnreadCount(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}

// GetExchangeUnreadCount handles GET /api/exchanges/:id/messages/unread
func (s *Server) GetExchangeUnreadCount(c *fiber.Ctx) error {
	userID := currentUserID(c)
	exchangeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.messageService.UnreadCountForExchange(c.Context(), exchangeID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}
