package entities

import (
	"time"

	"github.com/google/uuid"
)

type NutritionGoal struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Calories      float64   `gorm:"not null;check:calories >= 0" json:"calories"`
	Protein       float64   `gorm:"not null;check:protein >= 0" json:"protein"`
	Carbohydrates float64   `gorm:"not null;check:carbohydrates >= 0" json:"carbohydrates"`
	Fat           float64   `gorm:"not null;check:fat >= 0" json:"fat"`
	DateSet       time.Time `gorm:"type:date;not null;index" json:"date_set"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
