package favorite

import (
	migration "SmartMenza-Backend/cmd/database/migrate"
	"SmartMenza-Backend/entities"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN. The toggle
// guarantees under concurrency come from postgres itself (composite primary
// key + transaction), so they can only be exercised against a real instance.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))
	return db
}

func seedUserAndMeal(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID) {
	t.Helper()

	var role entities.Role
	require.NoError(t, db.Where("name = ?", "student").First(&role).Error)
	var mealType entities.MealType
	require.NoError(t, db.Where("name = ?", "lunch").First(&mealType).Error)

	user := entities.User{
		ID:           uuid.New(),
		Username:     "toggle-tester",
		Email:        uuid.NewString() + "@test.local",
		PasswordHash: "x",
		RoleID:       role.ID,
	}
	require.NoError(t, db.Create(&user).Error)

	meal := entities.Meal{
		ID:         uuid.New(),
		MealTypeID: mealType.ID,
		Name:       "test meal " + uuid.NewString(),
		Price:      1,
	}
	require.NoError(t, db.Create(&meal).Error)

	t.Cleanup(func() {
		db.Where("user_id = ?", user.ID).Delete(&entities.Favorite{})
		db.Delete(&meal)
		db.Delete(&user)
	})

	return user.ID, meal.ID
}

func TestToggleFavoriteConcurrentNeverDuplicates(t *testing.T) {
	db := openTestDB(t)
	repo := NewFavoriteRepository(db)
	userID, mealID := seedUserAndMeal(t, db)

	const toggles = 16
	var wg sync.WaitGroup
	errs := make(chan error, toggles)
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.ToggleFavorite(context.Background(), userID, mealID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&entities.Favorite{}).
		Where("user_id = ? AND meal_id = ?", userID, mealID).
		Count(&count).Error)
	assert.LessOrEqual(t, count, int64(1))
}

func TestToggleFavoriteSequentialRoundtrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewFavoriteRepository(db)
	userID, mealID := seedUserAndMeal(t, db)

	on, err := repo.ToggleFavorite(context.Background(), userID, mealID)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := repo.ToggleFavorite(context.Background(), userID, mealID)
	require.NoError(t, err)
	assert.False(t, off)

	var count int64
	require.NoError(t, db.Model(&entities.Favorite{}).
		Where("user_id = ? AND meal_id = ?", userID, mealID).
		Count(&count).Error)
	assert.Zero(t, count)
}
