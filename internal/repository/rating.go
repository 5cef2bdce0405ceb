package repository

import (
	"context"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"gorm.io/gorm"
)

// RatingRepository defines persistence operations for exchange ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Exists(ctx context.Context, exchangeID, raterID uint) (bool, error)
	AverageForUser(ctx context.Context, userID uint) (float64, int64, error)
	Histogram(ctx context.Context, userID uint) ([]models.RatingCount, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns a new RatingRepository implementation.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ratingRepository) Exists(ctx context.Context, exchangeID, raterID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("exchange_id = ? AND rater_id = ?", exchangeID, raterID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// AverageForUser returns the mean of all ratings received by the user
// and how many there are. Zero count means the user has never been
// rated and the caller should leave their score alone.
func (r *ratingRepository) AverageForUser(ctx context.Context, userID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("rated_user_id = ?", userID).
		Scan(&result).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	return result.Avg, result.Count, nil
}

func (r *ratingRepository) Histogram(ctx context.Context, userID uint) ([]models.RatingCount, error) {
	var counts []models.RatingCount
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("rating, COUNT(*) AS count").
		Where("rated_user_id = ?", userID).
		Group("rating").
		Order("rating ASC").
		Scan(&counts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return counts, nil
}

func (r *ratingRepository) ListForUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("rated_user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}
