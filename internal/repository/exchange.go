package repository

import (
	"context"
	"errors"
	"time"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"gorm.io/gorm"
)

// exchangeViewSelect joins display names onto 1:1 exchange rows. Skill
// names degrade to the tombstone placeholder once a skill is deleted.
const exchangeViewSelect = `exchanges.id, exchanges.initiator_id, exchanges.recipient_id, exchanges.status,
	exchanges.created_at, exchanges.completed_at,
	iu.full_name AS initiator_name, ru.full_name AS recipient_name,
	COALESCE(isk.name, '[Skill deleted]') AS initiator_skill_name,
	COALESCE(rsk.name, '[Skill deleted]') AS recipient_skill_name`

// ExchangeRepository defines persistence operations for exchanges,
// both 1:1 and group, including the group roster.
type ExchangeRepository interface {
	Create(ctx context.Context, exchange *models.Exchange) error
	GetByID(ctx context.Context, id uint) (*models.Exchange, error)
	FindPendingBetween(ctx context.Context, userA, userB uint) (*models.Exchange, error)
	UpdateStatus(ctx context.Context, id uint, status models.ExchangeStatus) error
	MarkCompleted(ctx context.Context, id uint, at time.Time) error
	ListForUser(ctx context.Context, userID uint) ([]models.ExchangeView, error)
	ListRawForUser(ctx context.Context, userID uint) ([]models.Exchange, error)
	CountByStatus(ctx context.Context, userID uint) (total, completed, pending int64, err error)

	AddParticipant(ctx context.Context, participant *models.ExchangeParticipant) error
	GetParticipant(ctx context.Context, exchangeID, userID uint) (*models.ExchangeParticipant, error)
	GetParticipantByID(ctx context.Context, id uint) (*models.ExchangeParticipant, error)
	UpdateParticipantStatus(ctx context.Context, id uint, status models.ParticipantStatus) error
	ListParticipants(ctx context.Context, exchangeID uint) ([]models.ParticipantView, error)
	CountParticipants(ctx context.Context, exchangeID uint) (int64, error)
	ListGroupsForUser(ctx context.Context, userID uint) ([]models.GroupExchangeView, error)
	ListOpenGroups(ctx context.Context, userID uint) ([]models.GroupExchangeView, error)
}

type exchangeRepository struct {
	db *gorm.DB
}

// NewExchangeRepository returns a new ExchangeRepository implementation.
func NewExchangeRepository(db *gorm.DB) ExchangeRepository {
	return &exchangeRepository{db: db}
}

func (r *exchangeRepository) Create(ctx context.Context, exchange *models.Exchange) error {
	if err := r.db.WithContext(ctx).Create(exchange).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *exchangeRepository) GetByID(ctx context.Context, id uint) (*models.Exchange, error) {
	var exchange models.Exchange
	if err := r.db.WithContext(ctx).First(&exchange, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Exchange", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &exchange, nil
}

// FindPendingBetween looks up a pending 1:1 exchange between the two
// users in either direction. Returns nil when none exists.
func (r *exchangeRepository) FindPendingBetween(ctx context.Context, userA, userB uint) (*models.Exchange, error) {
	var exchange models.Exchange
	err := r.db.WithContext(ctx).
		Where("is_group = ?", false).
		Where("status = ?", models.ExchangeStatusPending).
		Where("(initiator_id = ? AND recipient_id = ?) OR (initiator_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		First(&exchange).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &exchange, nil
}

func (r *exchangeRepository) UpdateStatus(ctx context.Context, id uint, status models.ExchangeStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Exchange{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *exchangeRepository) MarkCompleted(ctx context.Context, id uint, at time.Time) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Exchange{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.ExchangeStatusCompleted,
			"completed_at": at,
		}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *exchangeRepository) ListForUser(ctx context.Context, userID uint) ([]models.ExchangeView, error) {
	var views []models.ExchangeView
	if err := r.db.WithContext(ctx).
		Table("exchanges").
		Select(exchangeViewSelect).
		Joins("JOIN users iu ON iu.id = exchanges.initiator_id").
		Joins("JOIN users ru ON ru.id = exchanges.recipient_id").
		Joins("LEFT JOIN skills isk ON isk.id = exchanges.initiator_skill_id").
		Joins("LEFT JOIN skills rsk ON rsk.id = exchanges.recipient_skill_id").
		Where("exchanges.is_group = ?", false).
		Where("exchanges.initiator_id = ? OR exchanges.recipient_id = ?", userID, userID).
		Order("exchanges.created_at DESC").
		Scan(&views).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return views, nil
}

// ListRawForUser returns bare exchange rows for a user. The analytics
// layer aggregates them in memory so the query stays portable across
// database engines.
func (r *exchangeRepository) ListRawForUser(ctx context.Context, userID uint) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	if err := r.db.WithContext(ctx).
		Where("initiator_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&exchanges).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return exchanges, nil
}

func (r *exchangeRepository) CountByStatus(ctx context.Context, userID uint) (total, completed, pending int64, err error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&models.Exchange{}).
			Where("initiator_id = ? OR recipient_id = ?", userID, userID)
	}

	if err = base().Count(&total).Error; err != nil {
		return 0, 0, 0, models.NewInternalError(err)
	}
	if err = base().Where("status = ?", models.ExchangeStatusCompleted).Count(&completed).Error; err != nil {
		return 0, 0, 0, models.NewInternalError(err)
	}
	if err = base().Where("status = ?", models.ExchangeStatusPending).Count(&pending).Error; err != nil {
		return 0, 0, 0, models.NewInternalError(err)
	}
	return total, completed, pending, nil
}

func (r *exchangeRepository) AddParticipant(ctx context.Context, participant *models.ExchangeParticipant) error {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *exchangeRepository) GetParticipant(ctx context.Context, exchangeID, userID uint) (*models.ExchangeParticipant, error) {
	var participant models.ExchangeParticipant
	err := r.db.WithContext(ctx).
		Where("exchange_id = ? AND user_id = ?", exchangeID, userID).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &participant, nil
}

func (r *exchangeRepository) GetParticipantByID(ctx context.Context, id uint) (*models.ExchangeParticipant, error) {
	var participant models.ExchangeParticipant
	if err := r.db.WithContext(ctx).First(&participant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Participant", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &participant, nil
}

func (r *exchangeRepository) UpdateParticipantStatus(ctx context.Context, id uint, status models.ParticipantStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.ExchangeParticipant{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *exchangeRepository) ListParticipants(ctx context.Context, exchangeID uint) ([]models.ParticipantView, error) {
	var views []models.ParticipantView
	if err := r.db.WithContext(ctx).
		Table("exchange_participants").
		Select(`exchange_participants.id, exchange_participants.user_id, exchange_participants.skill_id,
			exchange_participants.role, exchange_participants.status, exchange_participants.joined_at,
			users.full_name, users.email,
			COALESCE(skills.name, '[Skill deleted]') AS skill_name,
			COALESCE(skills.category, '') AS category`).
		Joins("JOIN users ON users.id = exchange_participants.user_id").
		Joins("LEFT JOIN skills ON skills.id = exchange_participants.skill_id").
		Where("exchange_participants.exchange_id = ?", exchangeID).
		Order("exchange_participants.joined_at ASC").
		Scan(&views).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return views, nil
}

// CountParticipants counts the roster entries that hold a slot.
// Rejected members free their slot, so only pending and accepted
// entries count toward the cap.
func (r *exchangeRepository) CountParticipants(ctx context.Context, exchangeID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ExchangeParticipant{}).
		Where("exchange_id = ? AND status IN ?", exchangeID,
			[]models.ParticipantStatus{models.ParticipantStatusPending, models.ParticipantStatusAccepted}).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

const groupViewSelect = `exchanges.id, exchanges.initiator_id, exchanges.title, exchanges.description,
	exchanges.status, exchanges.max_participants, exchanges.created_at, exchanges.completed_at,
	users.full_name AS initiator_name,
	COALESCE(skills.name, '[Skill deleted]') AS initiator_skill_name,
	(SELECT COUNT(*) FROM exchange_participants ep WHERE ep.exchange_id = exchanges.id AND ep.status IN ('pending', 'accepted')) + 1 AS current_participants,
	CASE WHEN EXISTS (SELECT 1 FROM exchange_participants ep2 WHERE ep2.exchange_id = exchanges.id AND ep2.user_id = ?) THEN 1 ELSE 0 END AS user_participating`

func (r *exchangeRepository) groupViewQuery(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("exchanges").
		Select(groupViewSelect, userID).
		Joins("JOIN users ON users.id = exchanges.initiator_id").
		Joins("LEFT JOIN skills ON skills.id = exchanges.initiator_skill_id").
		Where("exchanges.is_group = ?", true)
}

// ListGroupsForUser returns group exchanges the user initiated or has
// joined, newest first.
func (r *exchangeRepository) ListGroupsForUser(ctx context.Context, userID uint) ([]models.GroupExchangeView, error) {
	var views []models.GroupExchangeView
	if err := r.groupViewQuery(ctx, userID).
		Where("exchanges.initiator_id = ? OR EXISTS (SELECT 1 FROM exchange_participants m WHERE m.exchange_id = exchanges.id AND m.user_id = ?)",
			userID, userID).
		Order("exchanges.created_at DESC").
		Scan(&views).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return views, nil
}

// ListOpenGroups returns pending group exchanges started by other
// users. The caller filters out full rosters.
func (r *exchangeRepository) ListOpenGroups(ctx context.Context, userID uint) ([]models.GroupExchangeView, error) {
	var views []models.GroupExchangeView
	if err := r.groupViewQuery(ctx, userID).
		Where("exchanges.status = ?", models.ExchangeStatusPending).
		Where("exchanges.initiator_id <> ?", userID).
		Order("exchanges.created_at DESC").
		Scan(&views).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return views, nil
}
