// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"github.com/chandanraj-03/skill-bartering-system/internal/cache"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfile(ctx context.Context, id uint) (*models.UserProfile, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdateRating(ctx context.Context, userID uint, rating float64) error
	IncrementTotalExchanges(ctx context.Context, userID uint) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	RecommendedUsers(ctx context.Context, userID uint, categories []models.SkillCategory, limit int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetProfile(ctx context.Context, id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).First(&profile.User, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("rated_user_id = ?", id).
		Count(&profile.RatingCount).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update persists profile changes. The password column is never
// written here: a user loaded through the cache carries an empty hash
// (the JSON projection drops it), and a blanket Save would persist
// that blank. Credentials change only through the auth flows.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Omit("password").Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) UpdateRating(ctx context.Context, userID uint, rating float64) error {
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("rating", rating).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (r *userRepository) IncrementTotalExchanges(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("total_exchanges", gorm.Expr("total_exchanges + 1")).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// RecommendedUsers returns users offering skills in the given
// categories, best-rated first. With no categories it falls back to
// the community's top-rated users.
func (r *userRepository) RecommendedUsers(ctx context.Context, userID uint, categories []models.SkillCategory, limit int) ([]models.User, error) {
	var users []models.User

	if len(categories) == 0 {
		if err := r.db.WithContext(ctx).
			Where("id <> ?", userID).
			Order("rating DESC").
			Order("total_exchanges DESC").
			Limit(limit).
			Find(&users).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		return users, nil
	}

	if err := r.db.WithContext(ctx).
		Distinct("users.*").
		Joins("JOIN skills ON skills.user_id = users.id").
		Where("skills.category IN ?", categories).
		Where("users.id <> ?", userID).
		Order("users.rating DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
