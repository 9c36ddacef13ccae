package entities

import (
	"github.com/google/uuid"
)

// RatingComment is a user's rating plus optional comment for a meal. One row
// per (user, meal); submitting again updates the existing row.
type RatingComment struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_meal_rating" json:"user_id"`
	MealID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_meal_rating;index" json:"meal_id"`
	Rating  int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string    `json:"comment,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Meal *Meal `gorm:"foreignKey:MealID"`
	Timestamp
}
