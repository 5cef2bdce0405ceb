package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"
	"github.com/chandanraj-03/skill-bartering-system/internal/observability"
	"github.com/chandanraj-03/skill-bartering-system/internal/repository"
	"github.com/chandanraj-03/skill-bartering-system/internal/validation"
)

// MessageService handles per-exchange chat, attachments, and unread
// tracking.
type MessageService struct {
	messageRepo  repository.MessageRepository
	exchangeRepo repository.ExchangeRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, exchangeRepo repository.ExchangeRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, exchangeRepo: exchangeRepo}
}

// MaxAttachmentBytes caps decoded inline attachment payloads. The
// payload lives in the message row, so oversized files are rejected
// rather than stored.
const MaxAttachmentBytes = 10 << 20

// Attachment is an inline file to send with a message. Payload is the
// raw base64 string as received from the client.
type Attachment struct {
	Name    string
	Payload string
	Type    string
}

// Send delivers a chat message within an exchange. Sender and
// recipient must both be involved in the exchange. A message needs a
// body, an attachment, or both; an attachment without a body gets a
// synthesized one.
func (s *MessageService) Send(ctx context.Context, exchangeID, senderID, recipientID uint, body string, attachment *Attachment) (*models.Message, error) {
	if senderID == recipientID {
		return nil, models.NewValidationError("cannot message yourself")
	}
	body = strings.TrimSpace(body)
	if body == "" && attachment == nil {
		return nil, models.NewValidationError("message body is required")
	}

	exchange, err := s.exchangeRepo.GetByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	for _, id := range []uint{senderID, recipientID} {
		ok, err := s.involved(ctx, exchange, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, models.NewUnauthorizedError("both users must be part of this exchange")
		}
	}

	message := &models.Message{
		ExchangeID:  exchangeID,
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}

	kind := "text"
	if attachment != nil {
		if err := s.applyAttachment(message, attachment); err != nil {
			return nil, err
		}
		kind = "attachment"
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	observability.MessagesSent.WithLabelValues(kind).Inc()
	return message, nil
}

func (s *MessageService) applyAttachment(message *models.Message, attachment *Attachment) error {
	name := strings.TrimSpace(attachment.Name)
	if name == "" {
		return models.NewValidationError("attachment name is required")
	}
	raw, err := base64.StdEncoding.DecodeString(attachment.Payload)
	if err != nil {
		return models.NewValidationError("attachment payload must be base64 encoded")
	}
	if len(raw) == 0 {
		return models.NewValidationError("attachment payload is empty")
	}
	if len(raw) > MaxAttachmentBytes {
		return models.NewValidationError("attachment exceeds the size limit")
	}
	if strings.HasPrefix(attachment.Type, "image/") {
		if err := validation.ValidateImage(raw); err != nil {
			return models.NewValidationError(err.Error())
		}
	}

	message.AttachmentName = name
	message.AttachmentData = attachment.Payload
	message.AttachmentType = attachment.Type
	if message.Body == "" {
		message.Body = fmt.Sprintf("Sent a file: %s", name)
	}
	return nil
}

// History returns the exchange's chat in chronological order and marks
// the caller's incoming messages as read.
func (s *MessageService) History(ctx context.Context, exchangeID, callerID uint) ([]models.MessageView, error) {
	exchange, err := s.exchangeRepo.GetByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	ok, err := s.involved(ctx, exchange, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewUnauthorizedError("you are not part of this exchange")
	}

	if err := s.messageRepo.MarkRead(ctx, exchangeID, callerID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListForExchange(ctx, exchangeID)
}

// UnreadCount returns the user's total unread messages across all
// exchanges.
func (s *MessageService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.messageRepo.UnreadCount(ctx, userID)
}

// UnreadCountForExchange returns the user's unread messages within one
// exchange.
func (s *MessageService) UnreadCountForExchange(ctx context.Context, exchangeID, userID uint) (int64, error) {
	return s.messageRepo.UnreadCountForExchange(ctx, exchangeID, userID)
}

func (s *MessageService) involved(ctx context.Context, exchange *models.Exchange, userID uint) (bool, error) {
	if exchange.IsParticipant(userID) {
		return true, nil
	}
	if !exchange.IsGroup {
		return false, nil
	}
	participant, err := s.exchangeRepo.GetParticipant(ctx, exchange.ID, userID)
	if err != nil {
		return false, err
	}
	return participant != nil, nil
}
