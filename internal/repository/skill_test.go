package repository

import (
	"context"
	"testing"

	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@geu.ac.in")
	bob := createTestUser(t, db, "Bob", "bob@geu.ac.in")
	createTestSkill(t, db, alice, "Guitar Lessons", models.CategoryMusic)
	createTestSkill(t, db, bob, "Python Basics", models.CategoryProgramming)
	createTestSkill(t, db, bob, "Advanced Python", models.CategoryProgramming)

	t.Run("keyword match is case-insensitive", func(t *testing.T) {
		results, err := repo.Search(ctx, "PYTHON", nil, alice.ID)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("own listings are excluded", func(t *testing.T) {
		results, err := repo.Search(ctx, "python", nil, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("category filter", func(t *testing.T) {
		cat := models.CategoryMusic
		results, err := repo.Search(ctx, "", &cat, bob.ID)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Guitar Lessons", results[0].Name)
		assert.Equal(t, "Alice", results[0].OwnerName)
		assert.Equal(t, models.DefaultRating, results[0].OwnerRating)
	})

	t.Run("no match", func(t *testing.T) {
		results, err := repo.Search(ctx, "juggling", nil, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestSkillRepository_Histogram(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@geu.ac.in")
	createTestSkill(t, db, alice, "Guitar Lessons", models.CategoryMusic)
	createTestSkill(t, db, alice, "Piano for Beginners", models.CategoryMusic)
	createTestSkill(t, db, alice, "Python Basics", models.CategoryProgramming)

	counts, err := repo.CategoryHistogram(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, models.CategoryMusic, counts[0].Category)
	assert.EqualValues(t, 2, counts[0].Count)

	n, err := repo.CountByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestSkillRepository_CompletedExchangeCategories(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@geu.ac.in")
	bob := createTestUser(t, db, "Bob", "bob@geu.ac.in")
	guitar := createTestSkill(t, db, alice, "Guitar Lessons", models.CategoryMusic)
	python := createTestSkill(t, db, bob, "Python Basics", models.CategoryProgramming)

	// Alice received Python through a completed exchange.
	exchange := &models.Exchange{
		InitiatorID:      alice.ID,
		RecipientID:      &bob.ID,
		InitiatorSkillID: &guitar.ID,
		RecipientSkillID: &python.ID,
		Status:           models.ExchangeStatusCompleted,
	}
	require.NoError(t, db.Create(exchange).Error)

	categories, err := repo.CompletedExchangeCategories(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, models.CategoryProgramming, categories[0])

	// Bob received Guitar.
	categories, err = repo.CompletedExchangeCategories(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, models.CategoryMusic, categories[0])
}

func TestSkillRepository_Recommendations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@geu.ac.in")
	bob := createTestUser(t, db, "Bob", "bob@geu.ac.in")
	carol := createTestUser(t, db, "Carol", "carol@geu.ac.in")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", carol.ID).Update("rating", 4.2).Error)

	createTestSkill(t, db, bob, "SQL Deep Dive", models.CategoryProgramming)
	createTestSkill(t, db, carol, "React Fundamentals", models.CategoryProgramming)
	createTestSkill(t, db, carol, "Street Photography", models.CategoryPhotography)

	t.Run("category-driven, best-rated owners first", func(t *testing.T) {
		results, err := repo.RecommendedSkills(ctx, alice.ID, []models.SkillCategory{models.CategoryProgramming}, 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Bob", results[0].OwnerName) // default 5.0 beats 4.2
	})

	t.Run("fallback without history", func(t *testing.T) {
		results, err := repo.RecommendedSkills(ctx, alice.ID, nil, 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("never recommends own listings", func(t *testing.T) {
		results, err := repo.RecommendedSkills(ctx, carol.ID, nil, 10)
		require.NoError(t, err)
		for _, r := range results {
			assert.NotEqual(t, carol.ID, r.OwnerID)
		}
	})
}

func TestSkillRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@geu.ac.in")
	skill := createTestSkill(t, db, alice, "Guitar Lessons", models.CategoryMusic)

	require.NoError(t, repo.Delete(ctx, skill.ID))

	_, err := repo.GetByID(ctx, skill.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
