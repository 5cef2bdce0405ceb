package repository

import (
	"context"
	"testing"

	"github.com/chandanraj-03/skill-bartering-system/internal/cache"
	"github.com/chandanraj-03/skill-bartering-system/internal/database"
	"github.com/chandanraj-03/skill-bartering-system/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestUserRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		FullName: "Alice",
		Email:    "alice@geu.ac.in",
		Password: "hashed",
		Rating:   models.DefaultRating,
	}
	require.NoError(t, repo.Create(ctx, user))

	t.Run("GetByID and GetByEmail", func(t *testing.T) {
		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.FullName)

		byEmail, err := repo.GetByEmail(ctx, "alice@geu.ac.in")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, user.ID, byEmail.ID)

		missing, err := repo.GetByEmail(ctx, "nobody@geu.ac.in")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := &models.User{FullName: "Other", Email: "alice@geu.ac.in", Password: "pw"}
		assert.Error(t, repo.Create(ctx, dup))
	})

	t.Run("UpdateRating and IncrementTotalExchanges", func(t *testing.T) {
		require.NoError(t, repo.UpdateRating(ctx, user.ID, 4.25))
		require.NoError(t, repo.IncrementTotalExchanges(ctx, user.ID))
		require.NoError(t, repo.IncrementTotalExchanges(ctx, user.ID))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.25, got.Rating, 0.0001)
		assert.Equal(t, 2, got.TotalExchanges)
	})

	t.Run("GetProfile includes rating count", func(t *testing.T) {
		rater := createTestUser(t, db, "Bob", "bob@geu.ac.in")
		exchange := createTestExchange(t, db, rater, user, models.ExchangeStatusCompleted)
		require.NoError(t, db.Create(&models.Rating{
			ExchangeID: exchange.ID, RaterID: rater.ID, RatedUserID: user.ID, Value: 4,
		}).Error)

		profile, err := repo.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, profile.RatingCount)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, user.ID))
		_, err := repo.GetByID(ctx, user.ID)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestUserRepository_UpdateKeepsPasswordOnWarmCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "Alice", "alice@geu.ac.in")

	// First read fills the cache, second read comes from it. The
	// cached projection drops the password hash.
	_, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	cached, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, cached.Password)

	cached.Bio = "Guitarist and CS senior."
	require.NoError(t, repo.Update(ctx, cached))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "pw", stored.Password, "profile update must not touch the stored hash")
	assert.Equal(t, "Guitarist and CS senior.", stored.Bio)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	// Cascades are enforced by the database, so this test needs
	// foreign keys switched on for its connection.
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@geu.ac.in")
	bob := createTestUser(t, db, "Bob", "bob@geu.ac.in")
	createTestSkill(t, db, alice, "Guitar Lessons", models.CategoryMusic)
	exchange := createTestExchange(t, db, alice, bob, models.ExchangeStatusCompleted)
	require.NoError(t, db.Create(&models.Message{
		ExchangeID: exchange.ID, SenderID: alice.ID, RecipientID: bob.ID, Body: "hello",
	}).Error)
	require.NoError(t, db.Create(&models.Rating{
		ExchangeID: exchange.ID, RaterID: bob.ID, RatedUserID: alice.ID, Value: 5,
	}).Error)

	require.NoError(t, NewUserRepository(db).Delete(ctx, alice.ID))

	for table, model := range map[string]interface{}{
		"skills":    &models.Skill{},
		"exchanges": &models.Exchange{},
		"messages":  &models.Message{},
		"ratings":   &models.Rating{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zerof(t, count, "%s should be empty after the owner is deleted", table)
	}

	// Bob is untouched.
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)
}

func TestUserRepository_RecommendedUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@geu.ac.in")
	bob := createTestUser(t, db, "Bob", "bob@geu.ac.in")
	carol := createTestUser(t, db, "Carol", "carol@geu.ac.in")
	createTestSkill(t, db, bob, "Python Basics", models.CategoryProgramming)
	createTestSkill(t, db, carol, "Logo Design", models.CategoryDesign)

	t.Run("matches the requested categories", func(t *testing.T) {
		users, err := repo.RecommendedUsers(ctx, alice.ID, []models.SkillCategory{models.CategoryProgramming}, 10)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Bob", users[0].FullName)
	})

	t.Run("falls back to top-rated members", func(t *testing.T) {
		users, err := repo.RecommendedUsers(ctx, alice.ID, nil, 10)
		require.NoError(t, err)
		assert.Len(t, users, 2)
		for _, u := range users {
			assert.NotEqual(t, alice.ID, u.ID)
		}
	})
}
