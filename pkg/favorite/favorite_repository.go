package favorite

import (
	"SmartMenza-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FavoriteRepository interface {
		ToggleFavorite(ctx context.Context, userID, mealID uuid.UUID) (bool, error)
		GetFavoriteMeals(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error)
		MealExists(ctx context.Context, mealID uuid.UUID) (bool, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// ToggleFavorite flips the bookmark inside one transaction. The insert relies
// on the composite primary key: if the row already exists nothing is inserted
// and the pair is deleted instead, so concurrent toggles cannot produce
// duplicate rows.
func (r *favoriteRepository) ToggleFavorite(ctx context.Context, userID, mealID uuid.UUID) (bool, error) {
	var isFavorite bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entities.Favorite{UserID: userID, MealID: mealID})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			isFavorite = true
			return nil
		}

		isFavorite = false
		return tx.Where("user_id = ? AND meal_id = ?", userID, mealID).
			Delete(&entities.Favorite{}).Error
	})
	if err != nil {
		return false, err
	}

	return isFavorite, nil
}

func (r *favoriteRepository) GetFavoriteMeals(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	var favorites []*entities.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Meal").
		Preload("Meal.MealType").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) MealExists(ctx context.Context, mealID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Meal{}).Where("id = ?", mealID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
