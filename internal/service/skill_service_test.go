package service

import (
	"context"
	"testing"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"
)

func TestSkillServiceAddSkillValidation(t *testing.T) {
	svc := NewSkillService(noopSkillRepo(), noopUserRepo())

	_, err := svc.AddSkill(context.Background(), 1, "  ", "Music", "Guitar basics", "")
	expectAppError(t, err, models.CodeValidation)

	_, err = svc.AddSkill(context.Background(), 1, "Guitar Lessons", "Underwater Basket Weaving", "Guitar basics", "")
	expectAppError(t, err, models.CodeValidation)

	_, err = svc.AddSkill(context.Background(), 1, "Guitar Lessons", "Music", "Guitar basics", "legendary")
	expectAppError(t, err, models.CodeValidation)
}

func TestSkillServiceAddSkillDefaultProficiency(t *testing.T) {
	var saved *models.Skill
	skills := noopSkillRepo()
	skills.createFn = func(_ context.Context, sk *models.Skill) error {
		sk.ID = 8
		saved = sk
		return nil
	}

	svc := NewSkillService(skills, noopUserRepo())
	skill, err := svc.AddSkill(context.Background(), 1, "Guitar Lessons", "Music", "Chords and strumming patterns for beginners", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || skill.ID != 8 {
		t.Fatal("skill was not persisted")
	}
	if skill.Proficiency != models.ProficiencyIntermediate {
		t.Fatalf("expected default proficiency, got %s", skill.Proficiency)
	}
	if skill.UserID != 1 || skill.Category != models.CategoryMusic {
		t.Fatalf("skill fields wrong: %+v", skill)
	}
}

func TestSkillServiceSearchUnknownCategory(t *testing.T) {
	svc := NewSkillService(noopSkillRepo(), noopUserRepo())
	_, err := svc.Search(context.Background(), 1, "guitar", "Underwater Basket Weaving")
	expectAppError(t, err, models.CodeValidation)
}

func TestSkillServiceDeleteOwnerOnly(t *testing.T) {
	skills := noopSkillRepo()
	skills.getByIDFn = func(_ context.Context, id uint) (*models.Skill, error) {
		return &models.Skill{ID: id, UserID: 2}, nil
	}
	deleted := false
	skills.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewSkillService(skills, noopUserRepo())

	err := svc.DeleteSkill(context.Background(), 1, 8)
	expectAppError(t, err, models.CodeUnauthorized)
	if deleted {
		t.Fatal("skill deleted despite ownership check")
	}

	if err := svc.DeleteSkill(context.Background(), 2, 8); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("owner delete did not reach the repository")
	}
}
