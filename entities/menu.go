package entities

import (
	"time"

	"github.com/google/uuid"
)

type Menu struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description,omitempty"`
	Date         time.Time `gorm:"type:date;not null;index" json:"date"`
	MenuTypeName string    `json:"menu_type_name,omitempty"`

	Items []*MenuItem `gorm:"foreignKey:MenuID"`
	Timestamp
}

// MenuItem links a meal into a menu. Position preserves the order in which
// meals were added, which is the order the menu is served in.
type MenuItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MenuID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_menu_meal" json:"menu_id"`
	MealID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_menu_meal" json:"meal_id"`
	Position int       `gorm:"not null" json:"position"`

	Menu *Menu `gorm:"foreignKey:MenuID"`
	Meal *Meal `gorm:"foreignKey:MealID"`
	Timestamp
}
