package service

import (
	"context"
	"strconv"

	"github.com/chandanraj-03/skill-bartering-system/internal/middleware"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"
	"github.com/chandanraj-03/skill-bartering-system/internal/observability"
	"github.com/chandanraj-03/skill-bartering-system/internal/repository"
)

// RatingService handles post-exchange ratings and keeps the rated
// user's mean score current.
type RatingService struct {
	ratingRepo   repository.RatingRepository
	exchangeRepo repository.ExchangeRepository
	userRepo     repository.UserRepository
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, exchangeRepo repository.ExchangeRepository, userRepo repository.UserRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, exchangeRepo: exchangeRepo, userRepo: userRepo}
}

// Submit records a rating for a counterpart in a completed exchange
// and recomputes the rated user's mean score. Each rater gets one
// rating per exchange.
func (s *RatingService) Submit(ctx context.Context, exchangeID, raterID, ratedUserID uint, value int, review string) (*models.Rating, error) {
	if value < models.RatingMin || value > models.RatingMax {
		return nil, models.NewValidationError("rating must be between 1 and 5")
	}
	if raterID == ratedUserID {
		return nil, models.NewUnauthorizedError("cannot rate yourself")
	}

	exchange, err := s.exchangeRepo.GetByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if err := s.checkInvolvement(ctx, exchange, raterID, ratedUserID); err != nil {
		return nil, err
	}
	if exchange.Status != models.ExchangeStatusCompleted {
		return nil, models.NewInvalidStateError("only completed exchanges can be rated")
	}

	already, err := s.ratingRepo.Exists(ctx, exchangeID, raterID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, models.NewConflictError("you already rated this exchange")
	}

	rating := &models.Rating{
		ExchangeID:  exchangeID,
		RaterID:     raterID,
		RatedUserID: ratedUserID,
		Value:       value,
		Review:      review,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	avg, count, err := s.ratingRepo.AverageForUser(ctx, ratedUserID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		if err := s.userRepo.UpdateRating(ctx, ratedUserID, avg); err != nil {
			return nil, err
		}
	}

	observability.RatingsSubmitted.WithLabelValues(strconv.Itoa(value)).Inc()
	middleware.Logger.InfoContext(ctx, "rating submitted",
		"exchange_id", exchangeID, "rated_user_id", ratedUserID, "rating", value)
	return rating, nil
}

// HasRated reports whether the caller already rated the exchange.
func (s *RatingService) HasRated(ctx context.Context, exchangeID, raterID uint) (bool, error) {
	if _, err := s.exchangeRepo.GetByID(ctx, exchangeID); err != nil {
		return false, err
	}
	return s.ratingRepo.Exists(ctx, exchangeID, raterID)
}

// ListForUser returns all ratings a user has received, newest first.
func (s *RatingService) ListForUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.ratingRepo.ListForUser(ctx, userID)
}

func (s *RatingService) checkInvolvement(ctx context.Context, exchange *models.Exchange, raterID, ratedUserID uint) error {
	for _, id := range []uint{raterID, ratedUserID} {
		if exchange.IsParticipant(id) {
			continue
		}
		if exchange.IsGroup {
			participant, err := s.exchangeRepo.GetParticipant(ctx, exchange.ID, id)
			if err != nil {
				return err
			}
			if participant != nil {
				continue
			}
		}
		return models.NewUnauthorizedError("both users must be part of this exchange")
	}
	return nil
}
