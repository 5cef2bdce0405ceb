package service

import (
	"context"
	"strings"
	"time"

	"github.com/chandanraj-03/skill-bartering-system/internal/middleware"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"
	"github.com/chandanraj-03/skill-bartering-system/internal/observability"
	"github.com/chandanraj-03/skill-bartering-system/internal/repository"
)

// ExchangeService handles the 1:1 and group exchange lifecycle.
type ExchangeService struct {
	exchangeRepo repository.ExchangeRepository
	skillRepo    repository.SkillRepository
	userRepo     repository.UserRepository
}

// NewExchangeService creates a new ExchangeService.
func NewExchangeService(exchangeRepo repository.ExchangeRepository, skillRepo repository.SkillRepository, userRepo repository.UserRepository) *ExchangeService {
	return &ExchangeService{exchangeRepo: exchangeRepo, skillRepo: skillRepo, userRepo: userRepo}
}

// Propose creates a pending 1:1 exchange. Each side's offered skill
// must belong to that side, and at most one pending exchange may exist
// between any pair of users at a time.
//
// The duplicate check is a read-then-write, so two simultaneous
// proposals can still both land. The database has no pair-level unique
// constraint; the window is accepted.
func (s *ExchangeService) Propose(ctx context.Context, initiatorID, recipientID, initiatorSkillID, recipientSkillID uint) (*models.Exchange, error) {
	if initiatorID == recipientID {
		return nil, models.NewValidationError("cannot propose an exchange with yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	offered, err := s.skillRepo.GetByID(ctx, initiatorSkillID)
	if err != nil {
		return nil, err
	}
	if offered.UserID != initiatorID {
		return nil, models.NewValidationError("offered skill does not belong to you")
	}

	requested, err := s.skillRepo.GetByID(ctx, recipientSkillID)
	if err != nil {
		return nil, err
	}
	if requested.UserID != recipientID {
		return nil, models.NewValidationError("requested skill does not belong to the recipient")
	}

	existing, err := s.exchangeRepo.FindPendingBetween(ctx, initiatorID, recipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("a pending exchange with this user already exists")
	}

	exchange := &models.Exchange{
		InitiatorID:      initiatorID,
		RecipientID:      &recipientID,
		InitiatorSkillID: &initiatorSkillID,
		RecipientSkillID: &recipientSkillID,
		Status:           models.ExchangeStatusPending,
	}
	if err := s.exchangeRepo.Create(ctx, exchange); err != nil {
		return nil, err
	}

	observability.ExchangeTransitions.WithLabelValues(string(models.ExchangeStatusPending)).Inc()
	middleware.Logger.InfoContext(ctx, "exchange proposed",
		"exchange_id", exchange.ID, "initiator_id", initiatorID, "recipient_id", recipientID)
	return exchange, nil
}

// Accept moves a pending exchange to accepted. Only the recipient may
// accept.
func (s *ExchangeService) Accept(ctx context.Context, exchangeID, callerID uint) error {
	return s.decide(ctx, exchangeID, callerID, models.ExchangeStatusAccepted)
}

// Reject moves a pending exchange to rejected. Only the recipient may
// reject.
func (s *ExchangeService) Reject(ctx context.Context, exchangeID, callerID uint) error {
	return s.decide(ctx, exchangeID, callerID, models.ExchangeStatusRejected)
}

func (s *ExchangeService) decide(ctx context.Context, exchangeID, callerID uint, to models.ExchangeStatus) error {
	exchange, err := s.exchangeRepo.GetByID(ctx, exchangeID)
	if err != nil {
		return err
	}
	if exchange.IsGroup {
		return models.NewValidationError("group exchanges are decided per participant")
	}
	if exchange.RecipientID == nil || *exchange.RecipientID != callerID {
		return models.NewUnauthorizedError("only the recipient can decide this exchange")
	}
	if exchange.Status != models.ExchangeStatusPending {
		return models.NewInvalidStateError("only pending exchanges can be accepted or rejected")
	}

	if err := s.exchangeRepo.UpdateStatus(ctx, exchangeID, to); err != nil {
		return err
	}
	observability.ExchangeTransitions.WithLabelValues(string(to)).Inc()
	middleware.Logger.InfoContext(ctx, "exchange decided",
		"exchange_id", exchangeID, "status", string(to))
	return nil
}

// Complete moves an accepted exchange to completed, stamps the
// completion time, and credits both parties' exchange counters. Either
// party may complete.
func (s *ExchangeService) Complete(ctx context.Context, exchangeID, callerID uint) error {
	exchange, err := s.exchangeRepo.GetByID(ctx, exchangeID)
	if err != nil {
		return err
	}
	if !exchange.IsParticipant(callerID) {
		return models.NewUnauthorizedError("only a participant can complete this exchange")
	}
	if exchange.Status != models.ExchangeStatusAccepted {
		return models.NewInvalidStateError("only accepted exchanges can be completed")
	}

	if err := s.exchangeRepo.MarkCompleted(ctx, exchangeID, time.Now()); err != nil {
		return err
	}

	if err := s.userRepo.IncrementTotalExchanges(ctx, exchange.InitiatorID); err != nil {
		return err
	}
	if exchange.RecipientID != nil {
		if err := s.userRepo.IncrementTotalExchanges(ctx, *exchange.RecipientID); err != nil {
			return err
		}
	}

	observability.ExchangeTransitions.WithLabelValues(string(models.ExchangeStatusCompleted)).Inc()
	middleware.Logger.InfoContext(ctx, "exchange completed", "exchange_id", exchangeID)
	return nil
}

// ListForUser returns the user's 1:1 exchange history with display
// names joined in.
func (s *ExchangeService) ListForUser(ctx context.Context, userID uint) ([]models.ExchangeView, error) {
	return s.exchangeRepo.ListForUser(ctx, userID)
}

// Get returns a single exchange if the caller is involved in it.
func (s *ExchangeService) Get(ctx context.Context, exchangeID, callerID uint) (*models.Exchange, error) {
	exchange, err := s.exchangeRepo.GetByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	involved, err := s.isInvolved(ctx, exchange, callerID)
	if err != nil {
		return nil, err
	}
	if !involved {
		return nil, models.NewUnauthorizedError("you are not part of this exchange")
	}
	return exchange, nil
}

// CreateGroup opens a group exchange with the caller as initiator. The
// exchange stays pending while the roster is open.
func (s *ExchangeService) CreateGroup(ctx context.Context, initiatorID, skillID uint, title, description string, maxParticipants int) (*models.Exchange, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, models.NewValidationError("title is required")
	}
	if maxParticipants < 2 {
		return nil, models.NewValidationError("a group exchange needs room for at least 2 people")
	}

	skill, err := s.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if skill.UserID != initiatorID {
		return nil, models.NewValidationError("offered skill does not belong to you")
	}

	exchange := &models.Exchange{
		InitiatorID:      initiatorID,
		InitiatorSkillID: &skillID,
		Status:           models.ExchangeStatusPending,
		IsGroup:          true,
		Title:            title,
		Description:      strings.TrimSpace(description),
		MaxParticipants:  maxParticipants,
	}
	if err := s.exchangeRepo.Create(ctx, exchange); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "group exchange created",
		"exchange_id", exchange.ID, "initiator_id", initiatorID, "max_participants", maxParticipants)
	return exchange, nil
}

// JoinGroup adds the caller to a group exchange roster with the skill
// they bring. Joining is rejected when the group is not open, the
// caller is already on the roster, or the roster is full.
func (s *ExchangeService) JoinGroup(ctx context.Context, exchangeID, userID, skillID uint) (*models.ExchangeParticipant, error) {
	exchange, err := s.exchangeRepo.GetByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if !exchange.IsGroup {
		return nil, models.NewValidationError("not a group exchange")
	}
	if exchange.InitiatorID == userID {
		return nil, models.NewConflictError("you started this group exchange")
	}
	if exchange.Status != models.ExchangeStatusPending {
		return nil, models.NewInvalidStateError("this group exchange is no longer open")
	}

	skill, err := s.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if skill.UserID != userID {
		return nil, models.NewValidationError("offered skill does not belong to you")
	}

	existing, err := s.exchangeRepo.GetParticipant(ctx, exchangeID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("you already joined this group exchange")
	}

	count, err := s.exchangeRepo.CountParticipants(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	// Roster size counts the initiator too.
	if int(count)+1 >= exchange.MaxParticipants {
		return nil, models.NewConflictError("this group exchange is full")
	}

	participant := &models.ExchangeParticipant{
		ExchangeID: exchangeID,
		UserID:     userID,
		SkillID:    &skillID,
		Role:       models.RoleParticipant,
		Status:     models.ParticipantStatusPending,
	}
	if err := s.exchangeRepo.AddParticipant(ctx, participant); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "joined group exchange",
		"exchange_id", exchangeID, "user_id", userID)
	return participant, nil
}

// ConfirmParticipation marks the caller's own pending roster entry as
// accepted.
func (s *ExchangeService) ConfirmParticipation(ctx context.Context, participantID, callerID uint) error {
	return s.decideParticipation(ctx, participantID, callerID, models.ParticipantStatusAccepted)
}

// DeclineParticipation marks the caller's own pending roster entry as
// rejected.
func (s *ExchangeService) DeclineParticipation(ctx context.Context, participantID, callerID uint) error {
	return s.decideParticipation(ctx, participantID, callerID, models.ParticipantStatusRejected)
}

func (s *ExchangeService) decideParticipation(ctx context.Context, participantID, callerID uint, to models.ParticipantStatus) error {
	participant, err := s.exchangeRepo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return err
	}
	if participant.UserID != callerID {
		return models.NewUnauthorizedError("you can only decide your own participation")
	}
	if participant.Status != models.ParticipantStatusPending {
		return models.NewInvalidStateError("participation was already decided")
	}
	return s.exchangeRepo.UpdateParticipantStatus(ctx, participantID, to)
}

// Participants returns the roster of a group exchange. Only people
// involved in the exchange may see it.
func (s *ExchangeService) Participants(ctx context.Context, exchangeID, callerID uint) ([]models.ParticipantView, error) {
	exchange, err := s.exchangeRepo.GetByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if !exchange.IsGroup {
		return nil, models.NewValidationError("not a group exchange")
	}
	involved, err := s.isInvolved(ctx, exchange, callerID)
	if err != nil {
		return nil, err
	}
	if !involved {
		return nil, models.NewUnauthorizedError("you are not part of this exchange")
	}
	return s.exchangeRepo.ListParticipants(ctx, exchangeID)
}

// ListGroupsForUser returns group exchanges the user started or joined.
func (s *ExchangeService) ListGroupsForUser(ctx context.Context, userID uint) ([]models.GroupExchangeView, error) {
	return s.exchangeRepo.ListGroupsForUser(ctx, userID)
}

// ListOpenGroups returns joinable group exchanges started by others.
// Full rosters are hidden unless the user is already on them.
func (s *ExchangeService) ListOpenGroups(ctx context.Context, userID uint) ([]models.GroupExchangeView, error) {
	groups, err := s.exchangeRepo.ListOpenGroups(ctx, userID)
	if err != nil {
		return nil, err
	}
	open := make([]models.GroupExchangeView, 0, len(groups))
	for _, g := range groups {
		if g.CurrentParticipants >= g.MaxParticipants && !g.UserParticipating {
			continue
		}
		open = append(open, g)
	}
	return open, nil
}

// isInvolved reports whether the user is the initiator, the 1:1
// recipient, or on the group roster.
func (s *ExchangeService) isInvolved(ctx context.Context, exchange *models.Exchange, userID uint) (bool, error) {
	if exchange.IsParticipant(userID) {
		return true, nil
	}
	if !exchange.IsGroup {
		return false, nil
	}
	participant, err := s.exchangeRepo.GetParticipant(ctx, exchange.ID, userID)
	if err != nil {
		return false, err
	}
	return participant != nil, nil
}
