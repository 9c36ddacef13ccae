package entities

import (
	"github.com/google/uuid"
)

type MealType struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"` // breakfast, lunch, dinner

	Meals []*Meal `gorm:"foreignKey:MealTypeID"`
	Timestamp
}

type Meal struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MealTypeID    uuid.UUID `gorm:"type:uuid;not null" json:"meal_type_id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `gorm:"not null;check:price >= 0" json:"price"`
	Calories      *float64  `gorm:"check:calories >= 0" json:"calories,omitempty"`
	Protein       *float64  `gorm:"check:protein >= 0" json:"protein,omitempty"`
	Carbohydrates *float64  `gorm:"check:carbohydrates >= 0" json:"carbohydrates,omitempty"`
	Fat           *float64  `gorm:"check:fat >= 0" json:"fat,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`

	MealType *MealType `gorm:"foreignKey:MealTypeID"`
	Timestamp
}
