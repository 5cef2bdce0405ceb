package service

import (
	"context"
	"testing"
	"time"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"
)

func TestStatsServicePointsAndBadge(t *testing.T) {
	skills := noopSkillRepo()
	skills.countByOwnerFn = func(context.Context, uint) (int64, error) { return 3, nil }
	skills.categoryHistogramFn = func(context.Context, uint) ([]models.CategoryCount, error) {
		return []models.CategoryCount{{Category: models.CategoryMusic, Count: 2}, {Category: models.CategoryProgramming, Count: 1}}, nil
	}
	exchanges := noopExchangeRepo()
	exchanges.countByStatusFn = func(context.Context, uint) (int64, int64, int64, error) {
		return 9, 6, 2, nil
	}

	svc := NewStatsService(noopUserRepo(), skills, exchanges, noopRatingRepo())
	stats, err := svc.Stats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.SkillCount != 3 || stats.TotalExchanges != 9 || stats.CompletedExchanges != 6 || stats.PendingExchanges != 2 {
		t.Fatalf("counts wrong: %+v", stats)
	}
	if stats.CommunityPoints != 60 {
		t.Fatalf("expected 60 points for 6 completed exchanges, got %d", stats.CommunityPoints)
	}
	if stats.Badge != models.BadgeSilver {
		t.Fatalf("expected Silver at 60 points, got %s", stats.Badge)
	}
	if len(stats.SkillsByCategory) != 2 {
		t.Fatalf("category histogram missing: %+v", stats.SkillsByCategory)
	}
}

func TestStatsServiceUnknownUser(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewStatsService(users, noopSkillRepo(), noopExchangeRepo(), noopRatingRepo())

	_, err := svc.Stats(context.Background(), 99)
	expectAppError(t, err, models.CodeNotFound)

	_, err = svc.Analytics(context.Background(), 99)
	expectAppError(t, err, models.CodeNotFound)
}

func TestStatsServiceAnalyticsTrends(t *testing.T) {
	jan := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 3, 18, 30, 0, 0, time.UTC)

	exchanges := noopExchangeRepo()
	exchanges.listRawForUserFn = func(context.Context, uint) ([]models.Exchange, error) {
		return []models.Exchange{
			{ID: 1, CreatedAt: feb, Status: models.ExchangeStatusPending},
			{ID: 2, CreatedAt: jan, Status: models.ExchangeStatusCompleted},
			{ID: 3, CreatedAt: jan, Status: models.ExchangeStatusCompleted},
			{ID: 4, CreatedAt: jan, Status: models.ExchangeStatusRejected},
		}, nil
	}
	ratings := noopRatingRepo()
	ratings.histogramFn = func(context.Context, uint) ([]models.RatingCount, error) {
		return []models.RatingCount{{Rating: 5, Count: 4}}, nil
	}

	svc := NewStatsService(noopUserRepo(), noopSkillRepo(), exchanges, ratings)
	analytics, err := svc.Analytics(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.MonthlyTrend{
		{Month: "2025-01", Status: models.ExchangeStatusCompleted, Count: 2},
		{Month: "2025-01", Status: models.ExchangeStatusRejected, Count: 1},
		{Month: "2025-02", Status: models.ExchangeStatusPending, Count: 1},
	}
	if len(analytics.Trends) != len(want) {
		t.Fatalf("expected %d trend buckets, got %+v", len(want), analytics.Trends)
	}
	for i, w := range want {
		if analytics.Trends[i] != w {
			t.Fatalf("trend %d: expected %+v, got %+v", i, w, analytics.Trends[i])
		}
	}
	if len(analytics.RatingsDistribution) != 1 || analytics.RatingsDistribution[0].Rating != 5 {
		t.Fatalf("ratings distribution wrong: %+v", analytics.RatingsDistribution)
	}
}
