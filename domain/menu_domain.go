package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateMenu     = "menu created successfully"
	MessageSuccessCreateMeal     = "meal created successfully"
	MessageSuccessUploadMealImg  = "meal image uploaded successfully"
	MessageFailedGetMenu         = "failed to retrieve menu"
	MessageFailedGetMenus        = "failed to retrieve menus"
	MessageFailedCreateMenu      = "failed to create menu"
	MessageFailedCreateMeal      = "failed to create meal"
	MessageFailedUploadMealImage = "failed to upload meal image"

	ErrMenuNotFound    = errors.New("no menu for the requested date")
	ErrMealNotFound    = errors.New("meal not found")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMealType = errors.New("unknown meal type")
)

type (
	MealResponse struct {
		ID            string   `json:"id"`
		MealType      string   `json:"meal_type"`
		Name          string   `json:"name"`
		Description   string   `json:"description,omitempty"`
		Price         float64  `json:"price"`
		Calories      *float64 `json:"calories,omitempty"`
		Protein       *float64 `json:"protein,omitempty"`
		Carbohydrates *float64 `json:"carbohydrates,omitempty"`
		Fat           *float64 `json:"fat,omitempty"`
		ImageURL      string   `json:"image_url,omitempty"`
	}

	MenuResponse struct {
		ID           string         `json:"id"`
		Name         string         `json:"name"`
		Description  string         `json:"description,omitempty"`
		Date         time.Time      `json:"date"`
		MenuTypeName string         `json:"menu_type_name,omitempty"`
		Meals        []MealResponse `json:"meals"`
	}

	CreateMenuRequest struct {
		Name         string   `json:"name" validate:"required"`
		Description  string   `json:"description"`
		Date         string   `json:"date" validate:"required"`
		MenuTypeName string   `json:"menu_type_name"`
		MealIDs      []string `json:"meal_ids" validate:"omitempty,dive,uuid"`
	}

	CreateMealRequest struct {
		MealTypeName  string   `json:"meal_type" validate:"required"`
		Name          string   `json:"name" validate:"required"`
		Description   string   `json:"description"`
		Price         float64  `json:"price" validate:"min=0"`
		Calories      *float64 `json:"calories" validate:"omitempty,min=0"`
		Protein       *float64 `json:"protein" validate:"omitempty,min=0"`
		Carbohydrates *float64 `json:"carbohydrates" validate:"omitempty,min=0"`
		Fat           *float64 `json:"fat" validate:"omitempty,min=0"`
	}

	UploadMealImageRequest struct {
		MealID string                `json:"meal_id" form:"meal_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
