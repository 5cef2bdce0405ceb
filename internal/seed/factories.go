// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password assigned to every seeded user.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	rng  *rand.Rand
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		opts: opts,
	}
}

// CreateUser constructs and persists a sample user on an allow-listed
// campus domain. Optional override functions may modify the generated
// user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	domain := "geu.ac.in"
	if len(f.opts.EmailDomains) > 0 {
		domain = f.opts.EmailDomains[f.rng.Intn(len(f.opts.EmailDomains))]
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: gofakeit.Name(),
		Email:    fmt.Sprintf("%s%d@%s", gofakeit.Username(), gofakeit.Number(100, 999), domain),
		Password: string(hashed),
		Bio:      gofakeit.Sentence(10),
		Rating:   models.DefaultRating,
	}
	user.CreatedAt = f.pastTime(90)

	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSkill persists a skill listing for the user with a plausible
// name for its category.
func (f *Factory) CreateSkill(user *models.User, overrides ...func(*models.Skill)) (*models.Skill, error) {
	categories := models.SkillCategories()
	category := categories[f.rng.Intn(len(categories))]

	levels := []models.ProficiencyLevel{
		models.ProficiencyBeginner,
		models.ProficiencyIntermediate,
		models.ProficiencyAdvanced,
		models.ProficiencyExpert,
	}

	skill := &models.Skill{
		UserID:      user.ID,
		Name:        skillNameFor(category, f.rng),
		Category:    category,
		Proficiency: levels[f.rng.Intn(len(levels))],
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		CreatedAt:   f.pastTime(60),
	}

	for _, override := range overrides {
		override(skill)
	}
	if err := f.db.Create(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

// CreateExchange persists a 1:1 exchange between two users, wiring
// their offered skills.
func (f *Factory) CreateExchange(initiator, recipient *models.User, initiatorSkill, recipientSkill *models.Skill, status models.ExchangeStatus) (*models.Exchange, error) {
	exchange := &models.Exchange{
		InitiatorID:      initiator.ID,
		RecipientID:      &recipient.ID,
		InitiatorSkillID: &initiatorSkill.ID,
		RecipientSkillID: &recipientSkill.ID,
		Status:           status,
		CreatedAt:        f.pastTime(45),
	}
	if status == models.ExchangeStatusCompleted {
		done := exchange.CreatedAt.Add(time.Duration(1+f.rng.Intn(14)) * 24 * time.Hour)
		exchange.CompletedAt = &done
	}
	if err := f.db.Create(exchange).Error; err != nil {
		return nil, err
	}
	return exchange, nil
}

// CreateMessage persists a chat message inside an exchange.
func (f *Factory) CreateMessage(exchange *models.Exchange, sender, recipient *models.User) (*models.Message, error) {
	message := &models.Message{
		ExchangeID:  exchange.ID,
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Body:        gofakeit.Sentence(8),
		IsRead:      f.rng.Intn(3) > 0,
		CreatedAt:   exchange.CreatedAt.Add(time.Duration(f.rng.Intn(72)) * time.Hour),
	}
	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// CreateRating persists a rating for a completed exchange.
func (f *Factory) CreateRating(exchange *models.Exchange, rater, rated *models.User) (*models.Rating, error) {
	rating := &models.Rating{
		ExchangeID:  exchange.ID,
		RaterID:     rater.ID,
		RatedUserID: rated.ID,
		Value:       3 + f.rng.Intn(3), // seeded communities skew friendly
		Review:      gofakeit.Sentence(12),
	}
	if err := f.db.Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

// pastTime returns a time up to maxDays in the past with hour-level jitter.
func (f *Factory) pastTime(maxDays int) time.Time {
	days := f.rng.Intn(maxDays)
	hours := f.rng.Intn(24)
	return time.Now().Add(-time.Duration(days)*24*time.Hour - time.Duration(hours)*time.Hour)
}

func skillNameFor(category models.SkillCategory, rng *rand.Rand) string {
	names := map[models.SkillCategory][]string{
		models.CategoryProgramming: {"Python Basics", "Go for Backends", "React Fundamentals", "SQL Deep Dive"},
		models.CategoryDesign:      {"Figma Prototyping", "Logo Design", "UI Color Theory"},
		models.CategoryPhotography: {"Portrait Photography", "Photo Editing", "Street Photography"},
		models.CategoryMusic:       {"Guitar Lessons", "Music Production", "Piano for Beginners"},
		models.CategoryLanguages:   {"Conversational Spanish", "Japanese N5 Prep", "English Writing"},
		models.CategoryWriting:     {"Technical Writing", "Creative Writing", "Blog Writing"},
		models.CategoryMarketing:   {"Social Media Marketing", "SEO Basics", "Content Strategy"},
		models.CategoryTeaching:    {"Exam Coaching", "Presentation Skills", "Study Techniques"},
		models.CategoryBusiness:    {"Pitch Decks", "Excel Modelling", "Startup Finance"},
	}
	pool, ok := names[category]
	if !ok {
		return gofakeit.BuzzWord() + " Workshop"
	}
	return pool[rng.Intn(len(pool))]
}
