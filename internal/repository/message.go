package repository

import (
	"context"

	"github.com/chandanraj-03/skill-bartering-system/internal/cache"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for exchange chat.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListForExchange(ctx context.Context, exchangeID uint) ([]models.MessageView, error)
	MarkRead(ctx context.Context, exchangeID, readerID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	UnreadCountForExchange(ctx context.Context, exchangeID, userID uint) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.UnreadCountKey(message.RecipientID))
	return nil
}

func (r *messageRepository) ListForExchange(ctx context.Context, exchangeID uint) ([]models.MessageView, error) {
	var views []models.MessageView
	if err := r.db.WithContext(ctx).
		Table("messages").
		Select(`messages.id, messages.exchange_id, messages.sender_id, messages.recipient_id,
			messages.message AS body, messages.attachment_name, messages.attachment_type, messages.attachment_data,
			messages.is_read, messages.created_at,
			users.full_name AS sender_name`).
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("messages.exchange_id = ?", exchangeID).
		Order("messages.created_at ASC, messages.id ASC").
		Scan(&views).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return views, nil
}

// MarkRead flags every message addressed to the reader within the
// exchange as read.
func (r *messageRepository) MarkRead(ctx context.Context, exchangeID, readerID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("exchange_id = ? AND recipient_id = ? AND is_read = ?", exchangeID, readerID, false).
		Update("is_read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.UnreadCountKey(readerID))
	return nil
}

func (r *messageRepository) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	key := cache.UnreadCountKey(userID)

	err := cache.Aside(ctx, key, &count, cache.UnreadTTL, func() error {
		if err := r.db.WithContext(ctx).
			Model(&models.Message{}).
			Where("recipient_id = ? AND is_read = ?", userID, false).
			Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *messageRepository) UnreadCountForExchange(ctx context.Context, exchangeID, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("exchange_id = ? AND recipient_id = ? AND is_read = ?", exchangeID, userID, false).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
