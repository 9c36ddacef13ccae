package rating

import (
	"SmartMenza-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MealRatingSummary struct {
		RatingsCount  int64
		AverageRating float64
	}

	OverallStats struct {
		TotalMeals           int64
		OverallAverageRating float64
		MaxRating            int
	}

	RatingRepository interface {
		UpsertRating(ctx context.Context, rating *entities.RatingComment) error
		GetRating(ctx context.Context, userID, mealID uuid.UUID) (*entities.RatingComment, error)
		UpdateRating(ctx context.Context, rating *entities.RatingComment) error
		GetMealRatingSummary(ctx context.Context, mealID uuid.UUID) (MealRatingSummary, error)
		GetOverallStats(ctx context.Context, dateFrom, dateTo *time.Time) (OverallStats, error)
		MealExists(ctx context.Context, mealID uuid.UUID) (bool, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating writes through the unique (user_id, meal_id) index in one
// statement, so two concurrent submits for the same pair cannot create
// duplicate rows.
func (r *ratingRepository) UpsertRating(ctx context.Context, rating *entities.RatingComment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "meal_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetRating(ctx context.Context, userID, mealID uuid.UUID) (*entities.RatingComment, error) {
	var rating entities.RatingComment
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND meal_id = ?", userID, mealID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) UpdateRating(ctx context.Context, rating *entities.RatingComment) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) GetMealRatingSummary(ctx context.Context, mealID uuid.UUID) (MealRatingSummary, error) {
	var row struct {
		RatingsCount  int64
		AverageRating float64
	}

	if err := r.db.WithContext(ctx).Model(&entities.RatingComment{}).
		Select("COUNT(*) AS ratings_count, COALESCE(AVG(rating), 0) AS average_rating").
		Where("meal_id = ?", mealID).
		Scan(&row).Error; err != nil {
		return MealRatingSummary{}, err
	}

	return MealRatingSummary{
		RatingsCount:  row.RatingsCount,
		AverageRating: row.AverageRating,
	}, nil
}

func (r *ratingRepository) GetOverallStats(ctx context.Context, dateFrom, dateTo *time.Time) (OverallStats, error) {
	var row struct {
		TotalMeals           int64
		OverallAverageRating float64
		MaxRating            int
	}

	query := r.db.WithContext(ctx).Model(&entities.RatingComment{}).
		Select("COUNT(DISTINCT meal_id) AS total_meals, COALESCE(AVG(rating), 0) AS overall_average_rating, COALESCE(MAX(rating), 0) AS max_rating")

	if dateFrom != nil {
		query = query.Where("created_at >= ?", *dateFrom)
	}
	if dateTo != nil {
		query = query.Where("created_at < ?", dateTo.AddDate(0, 0, 1))
	}

	if err := query.Scan(&row).Error; err != nil {
		return OverallStats{}, err
	}

	return OverallStats{
		TotalMeals:           row.TotalMeals,
		OverallAverageRating: row.OverallAverageRating,
		MaxRating:            row.MaxRating,
	}, nil
}

func (r *ratingRepository) MealExists(ctx context.Context, mealID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Meal{}).Where("id = ?", mealID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
