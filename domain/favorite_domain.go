package domain

import (
	"errors"
)

var (
	MessageFailedToggleFavorite = "failed to toggle favorite"
	MessageFailedGetFavorites   = "failed to retrieve favorites"

	ErrFavoriteMealMissing = errors.New("meal does not exist")
)

type (
	ToggleFavoriteRequest struct {
		MealID string `json:"mealId" validate:"required,uuid"`
	}

	ToggleFavoriteResponse struct {
		IsFavorite bool `json:"isFavorite"`
	}

	FavoriteMealResponse struct {
		MealID   string   `json:"meal_id"`
		MealType string   `json:"meal_type"`
		Name     string   `json:"name"`
		Calories *float64 `json:"calories,omitempty"`
		Protein  *float64 `json:"protein,omitempty"`
		ImageURL string   `json:"image_url,omitempty"`
	}
)
