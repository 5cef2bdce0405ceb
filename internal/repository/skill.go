package repository

import (
	"context"
	"errors"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines persistence operations for skill listings.
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	ListByOwner(ctx context.Context, userID uint) ([]models.Skill, error)
	CountByOwner(ctx context.Context, userID uint) (int64, error)
	Search(ctx context.Context, keyword string, category *models.SkillCategory, excludeUserID uint) ([]models.SkillSearchResult, error)
	CategoryHistogram(ctx context.Context, userID uint) ([]models.CategoryCount, error)
	CompletedExchangeCategories(ctx context.Context, userID uint) ([]models.SkillCategory, error)
	RecommendedSkills(ctx context.Context, userID uint, categories []models.SkillCategory, limit int) ([]models.SkillSearchResult, error)
	Delete(ctx context.Context, id uint) error
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository returns a new SkillRepository implementation.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Skill", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &skill, nil
}

func (r *skillRepository) ListByOwner(ctx context.Context, userID uint) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

func (r *skillRepository) CountByOwner(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Skill{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// Search matches the keyword case-insensitively against skill name and
// description. The caller's own listings are excluded so search results
// only ever show potential exchange partners.
func (r *skillRepository) Search(ctx context.Context, keyword string, category *models.SkillCategory, excludeUserID uint) ([]models.SkillSearchResult, error) {
	q := r.db.WithContext(ctx).
		Table("skills").
		Select("skills.id AS skill_id, skills.user_id AS owner_id, skills.name, skills.category, skills.description, skills.proficiency, users.full_name AS owner_name, users.email AS owner_email, users.rating AS owner_rating").
		Joins("JOIN users ON users.id = skills.user_id").
		Where("skills.user_id <> ?", excludeUserID)

	if keyword != "" {
		pattern := "%" + keyword + "%"
		q = q.Where("LOWER(skills.name) LIKE LOWER(?) OR LOWER(skills.description) LIKE LOWER(?)", pattern, pattern)
	}
	if category != nil {
		q = q.Where("skills.category = ?", *category)
	}

	var results []models.SkillSearchResult
	if err := q.Order("users.rating DESC").Scan(&results).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return results, nil
}

func (r *skillRepository) CategoryHistogram(ctx context.Context, userID uint) ([]models.CategoryCount, error) {
	var counts []models.CategoryCount
	if err := r.db.WithContext(ctx).
		Model(&models.Skill{}).
		Select("category, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("category").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return counts, nil
}

// CompletedExchangeCategories returns the distinct categories of skills
// the user has received through completed exchanges. They seed the
// recommendation queries.
func (r *skillRepository) CompletedExchangeCategories(ctx context.Context, userID uint) ([]models.SkillCategory, error) {
	var categories []models.SkillCategory
	if err := r.db.WithContext(ctx).
		Table("exchanges").
		Distinct("skills.category").
		Joins("JOIN skills ON skills.id = CASE WHEN exchanges.initiator_id = ? THEN exchanges.recipient_skill_id ELSE exchanges.initiator_skill_id END", userID).
		Where("exchanges.status = ?", models.ExchangeStatusCompleted).
		Where("exchanges.initiator_id = ? OR exchanges.recipient_id = ?", userID, userID).
		Pluck("skills.category", &categories).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return categories, nil
}

// RecommendedSkills returns skills in the given categories offered by
// other users, best-rated owners first. With no categories it falls
// back to listings from the top-rated owners overall.
func (r *skillRepository) RecommendedSkills(ctx context.Context, userID uint, categories []models.SkillCategory, limit int) ([]models.SkillSearchResult, error) {
	q := r.db.WithContext(ctx).
		Table("skills").
		Select("skills.id AS skill_id, skills.user_id AS owner_id, skills.name, skills.category, skills.description, skills.proficiency, users.full_name AS owner_name, users.email AS owner_email, users.rating AS owner_rating").
		Joins("JOIN users ON users.id = skills.user_id").
		Where("skills.user_id <> ?", userID)

	if len(categories) > 0 {
		q = q.Where("skills.category IN ?", categories)
	}

	var results []models.SkillSearchResult
	if err := q.Order("users.rating DESC").Limit(limit).Scan(&results).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return results, nil
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Skill{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
