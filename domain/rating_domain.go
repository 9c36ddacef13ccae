package domain

import (
	"errors"
	"time"
)

var (
	MessageFailedSubmitRating = "failed to submit rating"
	MessageFailedUpdateRating = "failed to update rating"
	MessageFailedGetSummary   = "failed to retrieve rating summary"
	MessageFailedGetStats     = "failed to retrieve overall stats"

	ErrRatingNotFound   = errors.New("no rating for this meal by this user")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrRatingMealGone   = errors.New("meal does not exist")
)

type (
	SubmitRatingRequest struct {
		MealID  string `json:"mealId" validate:"required,uuid"`
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}

	RatingCommentResponse struct {
		ID        string    `json:"id"`
		MealID    string    `json:"meal_id"`
		UserID    string    `json:"user_id"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment,omitempty"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	MealRatingSummaryResponse struct {
		MealID        string  `json:"mealId"`
		RatingsCount  int64   `json:"ratingsCount"`
		AverageRating float64 `json:"averageRating"`
	}

	OverallStatsResponse struct {
		TotalMeals           int64   `json:"totalMeals"`
		OverallAverageRating float64 `json:"overallAverageRating"`
		MaxRating            int     `json:"maxRating"`
	}
)
