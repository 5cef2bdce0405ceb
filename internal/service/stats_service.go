package service

import (
	"context"
	"sort"

	"github.com/chandanraj-03/skill-bartering-system/internal/cache"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"
	"github.com/chandanraj-03/skill-bartering-system/internal/repository"
)

// StatsService computes the dashboard stats and analytics aggregates.
// Everything is derived from base rows on demand; only the stats
// bundle is briefly cached.
type StatsService struct {
	userRepo     repository.UserRepository
	skillRepo    repository.SkillRepository
	exchangeRepo repository.ExchangeRepository
	ratingRepo   repository.RatingRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(userRepo repository.UserRepository, skillRepo repository.SkillRepository, exchangeRepo repository.ExchangeRepository, ratingRepo repository.RatingRepository) *StatsService {
	return &StatsService{
		userRepo:     userRepo,
		skillRepo:    skillRepo,
		exchangeRepo: exchangeRepo,
		ratingRepo:   ratingRepo,
	}
}

// Stats returns the user's dashboard summary: listing and exchange
// counts, category histogram, community points, and badge.
func (s *StatsService) Stats(ctx context.Context, userID uint) (*models.UserStats, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	var stats models.UserStats
	err := cache.Aside(ctx, cache.UserStatsKey(userID), &stats, cache.StatsTTL, func() error {
		skillCount, err := s.skillRepo.CountByOwner(ctx, userID)
		if err != nil {
			return err
		}
		total, completed, pending, err := s.exchangeRepo.CountByStatus(ctx, userID)
		if err != nil {
			return err
		}
		byCategory, err := s.skillRepo.CategoryHistogram(ctx, userID)
		if err != nil {
			return err
		}

		points := int(completed) * models.PointsPerCompletedExchange
		stats = models.UserStats{
			SkillCount:         skillCount,
			TotalExchanges:     total,
			CompletedExchanges: completed,
			PendingExchanges:   pending,
			SkillsByCategory:   byCategory,
			CommunityPoints:    points,
			Badge:              models.BadgeForPoints(points),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Analytics returns the user's monthly exchange trends, skill category
// distribution, and received-rating histogram. Trends are aggregated
// in memory from raw rows so the grouping is the same on every
// database engine.
func (s *StatsService) Analytics(ctx context.Context, userID uint) (*models.UserAnalytics, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	exchanges, err := s.exchangeRepo.ListRawForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		month  string
		status models.ExchangeStatus
	}
	counts := make(map[bucket]int64)
	for _, e := range exchanges {
		counts[bucket{e.CreatedAt.Format("2006-01"), e.Status}]++
	}
	trends := make([]models.MonthlyTrend, 0, len(counts))
	for b, n := range counts {
		trends = append(trends, models.MonthlyTrend{Month: b.month, Status: b.status, Count: n})
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Month != trends[j].Month {
			return trends[i].Month < trends[j].Month
		}
		return trends[i].Status < trends[j].Status
	})

	byCategory, err := s.skillRepo.CategoryHistogram(ctx, userID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.Histogram(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.UserAnalytics{
		Trends:              trends,
		SkillsDistribution:  byCategory,
		RatingsDistribution: ratings,
	}, nil
}
