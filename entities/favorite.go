package entities

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a user bookmark on a meal. The composite primary key keeps the
// pair unique at the database level, which the toggle relies on.
type Favorite struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	MealID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"meal_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
	Meal *Meal `gorm:"foreignKey:MealID"`
}
