package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"
)

type userRepoStub struct {
	getByIDFn                 func(context.Context, uint) (*models.User, error)
	getByEmailFn              func(context.Context, string) (*models.User, error)
	getProfileFn              func(context.Context, uint) (*models.UserProfile, error)
	createFn                  func(context.Context, *models.User) error
	updateFn                  func(context.Context, *models.User) error
	updateRatingFn            func(context.Context, uint, float64) error
	incrementTotalExchangesFn func(context.Context, uint) error
	deleteFn                  func(context.Context, uint) error
	listFn                    func(context.Context, int, int) ([]models.User, error)
	recommendedUsersFn        func(context.Context, uint, []models.SkillCategory, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetProfile(ctx context.Context, id uint) (*models.UserProfile, error) {
	return s.getProfileFn(ctx, id)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdateRating(ctx context.Context, userID uint, rating float64) error {
	return s.updateRatingFn(ctx, userID, rating)
}
func (s *userRepoStub) IncrementTotalExchanges(ctx context.Context, userID uint) error {
	return s.incrementTotalExchangesFn(ctx, userID)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) RecommendedUsers(ctx context.Context, userID uint, categories []models.SkillCategory, limit int) ([]models.User, error) {
	return s.recommendedUsersFn(ctx, userID, categories, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:                 func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:              func(context.Context, string) (*models.User, error) { return nil, nil },
		getProfileFn:              func(context.Context, uint) (*models.UserProfile, error) { return &models.UserProfile{}, nil },
		createFn:                  func(context.Context, *models.User) error { return nil },
		updateFn:                  func(context.Context, *models.User) error { return nil },
		updateRatingFn:            func(context.Context, uint, float64) error { return nil },
		incrementTotalExchangesFn: func(context.Context, uint) error { return nil },
		deleteFn:                  func(context.Context, uint) error { return nil },
		listFn:                    func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		recommendedUsersFn: func(context.Context, uint, []models.SkillCategory, int) ([]models.User, error) {
			return nil, nil
		},
	}
}

type skillRepoStub struct {
	createFn                      func(context.Context, *models.Skill) error
	getByIDFn                     func(context.Context, uint) (*models.Skill, error)
	listByOwnerFn                 func(context.Context, uint) ([]models.Skill, error)
	countByOwnerFn                func(context.Context, uint) (int64, error)
	searchFn                      func(context.Context, string, *models.SkillCategory, uint) ([]models.SkillSearchResult, error)
	categoryHistogramFn           func(context.Context, uint) ([]models.CategoryCount, error)
	completedExchangeCategoriesFn func(context.Context, uint) ([]models.SkillCategory, error)
	recommendedSkillsFn           func(context.Context, uint, []models.SkillCategory, int) ([]models.SkillSearchResult, error)
	deleteFn                      func(context.Context, uint) error
}

func (s *skillRepoStub) Create(ctx context.Context, skill *models.Skill) error {
	return s.createFn(ctx, skill)
}
func (s *skillRepoStub) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return s.getByIDFn(ctx, id)
}
func (s *skillRepoStub) ListByOwner(ctx context.Context, userID uint) ([]models.Skill, error) {
	return s.listByOwnerFn(ctx, userID)
}
func (s *skillRepoStub) CountByOwner(ctx context.Context, userID uint) (int64, error) {
	return s.countByOwnerFn(ctx, userID)
}
func (s *skillRepoStub) Search(ctx context.Context, keyword string, category *models.SkillCategory, excludeUserID uint) ([]models.SkillSearchResult, error) {
	return s.searchFn(ctx, keyword, category, excludeUserID)
}
func (s *skillRepoStub) CategoryHistogram(ctx context.Context, userID uint) ([]models.CategoryCount, error) {
	return s.categoryHistogramFn(ctx, userID)
}
func (s *skillRepoStub) CompletedExchangeCategories(ctx context.Context, userID uint) ([]models.SkillCategory, error) {
	return s.completedExchangeCategoriesFn(ctx, userID)
}
func (s *skillRepoStub) RecommendedSkills(ctx context.Context, userID uint, categories []models.SkillCategory, limit int) ([]models.SkillSearchResult, error) {
	return s.recommendedSkillsFn(ctx, userID, categories, limit)
}
func (s *skillRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		createFn:       func(context.Context, *models.Skill) error { return nil },
		getByIDFn:      func(_ context.Context, id uint) (*models.Skill, error) { return &models.Skill{ID: id}, nil },
		listByOwnerFn:  func(context.Context, uint) ([]models.Skill, error) { return nil, nil },
		countByOwnerFn: func(context.Context, uint) (int64, error) { return 0, nil },
		searchFn: func(context.Context, string, *models.SkillCategory, uint) ([]models.SkillSearchResult, error) {
			return nil, nil
		},
		categoryHistogramFn:           func(context.Context, uint) ([]models.CategoryCount, error) { return nil, nil },
		completedExchangeCategoriesFn: func(context.Context, uint) ([]models.SkillCategory, error) { return nil, nil },
		recommendedSkillsFn: func(context.Context, uint, []models.SkillCategory, int) ([]models.SkillSearchResult, error) {
			return nil, nil
		},
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type exchangeRepoStub struct {
	createFn                  func(context.Context, *models.Exchange) error
	getByIDFn                 func(context.Context, uint) (*models.Exchange, error)
	findPendingBetweenFn      func(context.Context, uint, uint) (*models.Exchange, error)
	updateStatusFn            func(context.Context, uint, models.ExchangeStatus) error
	markCompletedFn           func(context.Context, uint, time.Time) error
	listForUserFn             func(context.Context, uint) ([]models.ExchangeView, error)
	listRawForUserFn          func(context.Context, uint) ([]models.Exchange, error)
	countByStatusFn           func(context.Context, uint) (int64, int64, int64, error)
	addParticipantFn          func(context.Context, *models.ExchangeParticipant) error
	getParticipantFn          func(context.Context, uint, uint) (*models.ExchangeParticipant, error)
	getParticipantByIDFn      func(context.Context, uint) (*models.ExchangeParticipant, error)
	updateParticipantStatusFn func(context.Context, uint, models.ParticipantStatus) error
	listParticipantsFn        func(context.Context, uint) ([]models.ParticipantView, error)
	countParticipantsFn       func(context.Context, uint) (int64, error)
	listGroupsForUserFn       func(context.Context, uint) ([]models.GroupExchangeView, error)
	listOpenGroupsFn          func(context.Context, uint) ([]models.GroupExchangeView, error)
}

func (s *exchangeRepoStub) Create(ctx context.Context, exchange *models.Exchange) error {
	return s.createFn(ctx, exchange)
}
func (s *exchangeRepoStub) GetByID(ctx context.Context, id uint) (*models.Exchange, error) {
	return s.getByIDFn(ctx, id)
}
func (s *exchangeRepoStub) FindPendingBetween(ctx context.Context, userA, userB uint) (*models.Exchange, error) {
	return s.findPendingBetweenFn(ctx, userA, userB)
}
func (s *exchangeRepoStub) UpdateStatus(ctx context.Context, id uint, status models.ExchangeStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *exchangeRepoStub) MarkCompleted(ctx context.Context, id uint, at time.Time) error {
	return s.markCompletedFn(ctx, id, at)
}
func (s *exchangeRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.ExchangeView, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *exchangeRepoStub) ListRawForUser(ctx context.Context, userID uint) ([]models.Exchange, error) {
	return s.listRawForUserFn(ctx, userID)
}
func (s *exchangeRepoStub) CountByStatus(ctx context.Context, userID uint) (int64, int64, int64, error) {
	return s.countByStatusFn(ctx, userID)
}
func (s *exchangeRepoStub) AddParticipant(ctx context.Context, participant *models.ExchangeParticipant) error {
	return s.addParticipantFn(ctx, participant)
}
func (s *exchangeRepoStub) GetParticipant(ctx context.Context, exchangeID, userID uint) (*models.ExchangeParticipant, error) {
	return s.getParticipantFn(ctx, exchangeID, userID)
}
func (s *exchangeRepoStub) GetParticipantByID(ctx context.Context, id uint) (*models.ExchangeParticipant, error) {
	return s.getParticipantByIDFn(ctx, id)
}
func (s *exchangeRepoStub) UpdateParticipantStatus(ctx context.Context, id uint, status models.ParticipantStatus) error {
	return s.updateParticipantStatusFn(ctx, id, status)
}
func (s *exchangeRepoStub) ListParticipants(ctx context.Context, exchangeID uint) ([]models.ParticipantView, error) {
	return s.listParticipantsFn(ctx, exchangeID)
}
func (s *exchangeRepoStub) CountParticipants(ctx context.Context, exchangeID uint) (int64, error) {
	return s.countParticipantsFn(ctx, exchangeID)
}
func (s *exchangeRepoStub) ListGroupsForUser(ctx context.Context, userID uint) ([]models.GroupExchangeView, error) {
	return s.listGroupsForUserFn(ctx, userID)
}
func (s *exchangeRepoStub) ListOpenGroups(ctx context.Context, userID uint) ([]models.GroupExchangeView, error) {
	return s.listOpenGroupsFn(ctx, userID)
}

func noopExchangeRepo() *exchangeRepoStub {
	return &exchangeRepoStub{
		createFn:             func(context.Context, *models.Exchange) error { return nil },
		getByIDFn:            func(_ context.Context, id uint) (*models.Exchange, error) { return &models.Exchange{ID: id}, nil },
		findPendingBetweenFn: func(context.Context, uint, uint) (*models.Exchange, error) { return nil, nil },
		updateStatusFn:       func(context.Context, uint, models.ExchangeStatus) error { return nil },
		markCompletedFn:      func(context.Context, uint, time.Time) error { return nil },
		listForUserFn:        func(context.Context, uint) ([]models.ExchangeView, error) { return nil, nil },
		listRawForUserFn:     func(context.Context, uint) ([]models.Exchange, error) { return nil, nil },
		countByStatusFn:      func(context.Context, uint) (int64, int64, int64, error) { return 0, 0, 0, nil },
		addParticipantFn:     func(context.Context, *models.ExchangeParticipant) error { return nil },
		getParticipantFn: func(context.Context, uint, uint) (*models.ExchangeParticipant, error) {
			return nil, nil
		},
		getParticipantByIDFn: func(_ context.Context, id uint) (*models.ExchangeParticipant, error) {
			return &models.ExchangeParticipant{ID: id}, nil
		},
		updateParticipantStatusFn: func(context.Context, uint, models.ParticipantStatus) error { return nil },
		listParticipantsFn:        func(context.Context, uint) ([]models.ParticipantView, error) { return nil, nil },
		countParticipantsFn:       func(context.Context, uint) (int64, error) { return 0, nil },
		listGroupsForUserFn:       func(context.Context, uint) ([]models.GroupExchangeView, error) { return nil, nil },
		listOpenGroupsFn:          func(context.Context, uint) ([]models.GroupExchangeView, error) { return nil, nil },
	}
}

type messageRepoStub struct {
	createFn                 func(context.Context, *models.Message) error
	listForExchangeFn        func(context.Context, uint) ([]models.MessageView, error)
	markReadFn               func(context.Context, uint, uint) error
	unreadCountFn            func(context.Context, uint) (int64, error)
	unreadCountForExchangeFn func(context.Context, uint, uint) (int64, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) ListForExchange(ctx context.Context, exchangeID uint) ([]models.MessageView, error) {
	return s.listForExchangeFn(ctx, exchangeID)
}
func (s *messageRepoStub) MarkRead(ctx context.Context, exchangeID, readerID uint) error {
	return s.markReadFn(ctx, exchangeID, readerID)
}
func (s *messageRepoStub) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.unreadCountFn(ctx, userID)
}
func (s *messageRepoStub) UnreadCountForExchange(ctx context.Context, exchangeID, userID uint) (int64, error) {
	return s.unreadCountForExchangeFn(ctx, exchangeID, userID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:                 func(context.Context, *models.Message) error { return nil },
		listForExchangeFn:        func(context.Context, uint) ([]models.MessageView, error) { return nil, nil },
		markReadFn:               func(context.Context, uint, uint) error { return nil },
		unreadCountFn:            func(context.Context, uint) (int64, error) { return 0, nil },
		unreadCountForExchangeFn: func(context.Context, uint, uint) (int64, error) { return 0, nil },
	}
}

type ratingRepoStub struct {
	createFn         func(context.Context, *models.Rating) error
	existsFn         func(context.Context, uint, uint) (bool, error)
	averageForUserFn func(context.Context, uint) (float64, int64, error)
	histogramFn      func(context.Context, uint) ([]models.RatingCount, error)
	listForUserFn    func(context.Context, uint) ([]models.Rating, error)
}

func (s *ratingRepoStub) Create(ctx context.Context, rating *models.Rating) error {
	return s.createFn(ctx, rating)
}
func (s *ratingRepoStub) Exists(ctx context.Context, exchangeID, raterID uint) (bool, error) {
	return s.existsFn(ctx, exchangeID, raterID)
}
func (s *ratingRepoStub) AverageForUser(ctx context.Context, userID uint) (float64, int64, error) {
	return s.averageForUserFn(ctx, userID)
}
func (s *ratingRepoStub) Histogram(ctx context.Context, userID uint) ([]models.RatingCount, error) {
	return s.histogramFn(ctx, userID)
}
func (s *ratingRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.listForUserFn(ctx, userID)
}

func noopRatingRepo() *ratingRepoStub {
	return &ratingRepoStub{
		createFn:         func(context.Context, *models.Rating) error { return nil },
		existsFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		averageForUserFn: func(context.Context, uint) (float64, int64, error) { return 0, 0, nil },
		histogramFn:      func(context.Context, uint) ([]models.RatingCount, error) { return nil, nil },
		listForUserFn:    func(context.Context, uint) ([]models.Rating, error) { return nil, nil },
	}
}

func expectAppError(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s app error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}

func uintPtr(v uint) *uint { return &v }
