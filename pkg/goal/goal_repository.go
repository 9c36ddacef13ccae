package goal

import (
	"SmartMenza-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GoalRepository interface {
		CreateGoal(ctx context.Context, goal *entities.NutritionGoal) error
		GetLatestGoal(ctx context.Context, userID uuid.UUID) (*entities.NutritionGoal, error)
	}

	goalRepository struct {
		db *gorm.DB
	}
)

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) CreateGoal(ctx context.Context, goal *entities.NutritionGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepository) GetLatestGoal(ctx context.Context, userID uuid.UUID) (*entities.NutritionGoal, error) {
	var goal entities.NutritionGoal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_set DESC, created_at DESC").
		First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
