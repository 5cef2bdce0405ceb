package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"gorm.io/gorm"
)

// Options tunes the generated data set.
type Options struct {
	EmailDomains []string
}

// Seeder populates the database with a plausible campus community.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rng     *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db, opts),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Deletion order follows the foreign
// keys from leaves to roots.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []interface{}{
		&models.Rating{},
		&models.Message{},
		&models.ExchangeParticipant{},
		&models.Exchange{},
		&models.Skill{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// SeedCommunity creates users with skill listings and a mesh of
// exchanges in assorted lifecycle states, with chat and ratings on the
// active ones.
func (s *Seeder) SeedCommunity(p Profile) error {
	log.Printf("Seeding %d users...", p.Users)

	users := make([]*models.User, 0, p.Users)
	skillsByUser := make(map[uint][]*models.Skill)
	for i := 0; i < p.Users; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)

		n := 1 + s.rng.Intn(p.SkillsPerUser)
		for j := 0; j < n; j++ {
			skill, err := s.factory.CreateSkill(user)
			if err != nil {
				return fmt.Errorf("creating skill: %w", err)
			}
			skillsByUser[user.ID] = append(skillsByUser[user.ID], skill)
		}
	}
	if len(users) < 2 {
		return nil
	}

	log.Printf("Seeding %d exchanges...", p.Exchanges)
	statuses := []models.ExchangeStatus{
		models.ExchangeStatusPending,
		models.ExchangeStatusAccepted,
		models.ExchangeStatusRejected,
		models.ExchangeStatusCompleted,
		models.ExchangeStatusCompleted, // completed weighted double
	}

	completedByUser := make(map[uint]int)
	for i := 0; i < p.Exchanges; i++ {
		a := users[s.rng.Intn(len(users))]
		b := users[s.rng.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}

		status := statuses[s.rng.Intn(len(statuses))]
		exchange, err := s.factory.CreateExchange(a, b,
			skillsByUser[a.ID][s.rng.Intn(len(skillsByUser[a.ID]))],
			skillsByUser[b.ID][s.rng.Intn(len(skillsByUser[b.ID]))],
			status)
		if err != nil {
			return fmt.Errorf("creating exchange: %w", err)
		}

		if status == models.ExchangeStatusAccepted || status == models.ExchangeStatusCompleted {
			for m := 0; m < p.MessagesPerExchange; m++ {
				sender, recipient := a, b
				if m%2 == 1 {
					sender, recipient = b, a
				}
				if _, err := s.factory.CreateMessage(exchange, sender, recipient); err != nil {
					return fmt.Errorf("creating message: %w", err)
				}
			}
		}

		if status == models.ExchangeStatusCompleted {
			completedByUser[a.ID]++
			completedByUser[b.ID]++
			if s.rng.Intn(2) == 0 {
				if _, err := s.factory.CreateRating(exchange, a, b); err != nil {
					return fmt.Errorf("creating rating: %w", err)
				}
			}
		}
	}

	// Sync the denormalized counters and mean ratings.
	for userID, n := range completedByUser {
		if err := s.db.Model(&models.User{}).Where("id = ?", userID).
			Update("total_exchanges", n).Error; err != nil {
			return err
		}
	}
	if err := s.db.Exec(`UPDATE users SET rating = (
		SELECT AVG(r.rating) FROM ratings r WHERE r.rated_user_id = users.id
	) WHERE id IN (SELECT DISTINCT rated_user_id FROM ratings)`).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d users, %d exchanges", len(users), p.Exchanges)
	return nil
}

// SeedGroups opens group exchanges hosted by random users and fills
// part of each roster.
func (s *Seeder) SeedGroups(count int) error {
	var users []models.User
	if err := s.db.Preload("Skills").Limit(50).Find(&users).Error; err != nil {
		return err
	}
	hosts := make([]models.User, 0, len(users))
	for _, u := range users {
		if len(u.Skills) > 0 {
			hosts = append(hosts, u)
		}
	}
	if len(hosts) < 2 {
		return nil
	}

	for i := 0; i < count; i++ {
		host := hosts[s.rng.Intn(len(hosts))]
		skill := host.Skills[s.rng.Intn(len(host.Skills))]

		exchange := &models.Exchange{
			InitiatorID:      host.ID,
			InitiatorSkillID: &skill.ID,
			Status:           models.ExchangeStatusPending,
			IsGroup:          true,
			Title:            fmt.Sprintf("%s study group", skill.Name),
			Description:      skill.Description,
			MaxParticipants:  3 + s.rng.Intn(5),
		}
		if err := s.db.Create(exchange).Error; err != nil {
			return err
		}

		joined := 0
		for _, member := range hosts {
			if member.ID == host.ID || joined >= exchange.MaxParticipants-2 {
				continue
			}
			if s.rng.Intn(3) != 0 {
				continue
			}
			memberSkill := member.Skills[s.rng.Intn(len(member.Skills))]
			participant := &models.ExchangeParticipant{
				ExchangeID: exchange.ID,
				UserID:     member.ID,
				SkillID:    &memberSkill.ID,
				Role:       models.RoleParticipant,
				Status:     models.ParticipantStatusAccepted,
			}
			if err := s.db.Create(participant).Error; err != nil {
				return err
			}
			joined++
		}
	}
	return nil
}
