// Package service contains the business logic between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/chandanraj-03/skill-bartering-system/internal/middleware"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"
	"github.com/chandanraj-03/skill-bartering-system/internal/repository"
	"github.com/chandanraj-03/skill-bartering-system/internal/validation"
)

// UserService handles profile management and account lifecycle.
type UserService struct {
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, skillRepo repository.SkillRepository) *UserService {
	return &UserService{userRepo: userRepo, skillRepo: skillRepo}
}

// GetProfile returns the user's extended profile.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	return s.userRepo.GetProfile(ctx, userID)
}

// UpdateProfile changes the display name and bio. Blank names are
// rejected; the bio may be cleared.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, fullName, bio string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, models.NewValidationError("full name is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	user.Bio = strings.TrimSpace(bio)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileImage stores a base64-encoded profile picture after
// checking it decodes as a supported image.
func (s *UserService) UpdateProfileImage(ctx context.Context, userID uint, imageBase64 string) error {
	raw, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return models.NewValidationError("profile image must be base64 encoded")
	}
	if err := validation.ValidateImage(raw); err != nil {
		return models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.ProfileImage = imageBase64
	return s.userRepo.Update(ctx, user)
}

// UpdateSocialLinks replaces the optional external profile URLs.
func (s *UserService) UpdateSocialLinks(ctx context.Context, userID uint, links models.SocialLinks) error {
	for _, u := range []string{links.LinkedinURL, links.GithubURL, links.TwitterURL, links.PortfolioURL} {
		if u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return models.NewValidationError("social links must be http(s) URLs")
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.LinkedinURL = links.LinkedinURL
	user.GithubURL = links.GithubURL
	user.TwitterURL = links.TwitterURL
	user.PortfolioURL = links.PortfolioURL
	return s.userRepo.Update(ctx, user)
}

// DeleteAccount removes the user. Owned skills, exchanges, messages,
// and ratings go with it through the cascade constraints.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	middleware.Logger.InfoContext(ctx, "account deleted", "user_id", userID)
	return nil
}

// ListUsers returns a page of community members.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// RecommendedUsers suggests exchange partners based on the categories
// the user has already completed exchanges in, topped up with the
// best-rated members when history is thin.
func (s *UserService) RecommendedUsers(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = 10
	}
	categories, err := s.skillRepo.CompletedExchangeCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.RecommendedUsers(ctx, userID, categories, limit)
}
