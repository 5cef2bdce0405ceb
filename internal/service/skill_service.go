package service

import (
	"context"
	"strings"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"
	"github.com/chandanraj-03/skill-bartering-system/internal/repository"
	"github.com/chandanraj-03/skill-bartering-system/internal/validation"
)

// SkillService handles skill listing management and discovery.
type SkillService struct {
	skillRepo repository.SkillRepository
	userRepo  repository.UserRepository
}

// NewSkillService creates a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository, userRepo repository.UserRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo, userRepo: userRepo}
}

// AddSkill creates a skill listing for the user after validating the
// fields and the category/proficiency enums.
func (s *SkillService) AddSkill(ctx context.Context, userID uint, name, category, description, proficiency string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validation.ValidateSkillInput(name, category, description); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	cat := models.SkillCategory(category)
	if !cat.Valid() {
		return nil, models.NewValidationError("unknown skill category")
	}
	level := models.ProficiencyLevel(proficiency)
	if proficiency == "" {
		level = models.ProficiencyIntermediate
	} else if !level.Valid() {
		return nil, models.NewValidationError("unknown proficiency level")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	skill := &models.Skill{
		UserID:      userID,
		Name:        name,
		Category:    cat,
		Description: description,
		Proficiency: level,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// ListSkills returns the user's own listings.
func (s *SkillService) ListSkills(ctx context.Context, userID uint) ([]models.Skill, error) {
	return s.skillRepo.ListByOwner(ctx, userID)
}

// Search finds listings from other users by keyword and optional
// category filter.
func (s *SkillService) Search(ctx context.Context, userID uint, keyword, category string) ([]models.SkillSearchResult, error) {
	var cat *models.SkillCategory
	if category != "" {
		c := models.SkillCategory(category)
		if !c.Valid() {
			return nil, models.NewValidationError("unknown skill category")
		}
		cat = &c
	}
	return s.skillRepo.Search(ctx, strings.TrimSpace(keyword), cat, userID)
}

// DeleteSkill removes a listing. Only the owner may delete it.
// Exchanges that referenced the skill keep working; their skill name
// degrades to a placeholder.
func (s *SkillService) DeleteSkill(ctx context.Context, userID, skillID uint) error {
	skill, err := s.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return err
	}
	if skill.UserID != userID {
		return models.NewUnauthorizedError("only the owner can delete a skill")
	}
	return s.skillRepo.Delete(ctx, skillID)
}

// RecommendedSkills suggests listings based on the categories the user
// has completed exchanges in, falling back to top-rated owners.
func (s *SkillService) RecommendedSkills(ctx context.Context, userID uint, limit int) ([]models.SkillSearchResult, error) {
	if limit <= 0 {
		limit = 10
	}
	categories, err := s.skillRepo.CompletedExchangeCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.skillRepo.RecommendedSkills(ctx, userID, categories, limit)
}
