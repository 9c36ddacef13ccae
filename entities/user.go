package entities

import (
	"github.com/google/uuid"
)

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"` // student, employee, admin

	Users []*User `gorm:"foreignKey:RoleID"`
	Timestamp
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username     string    `gorm:"not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	GoogleID     *string   `json:"google_id,omitempty"`
	RoleID       uuid.UUID `gorm:"type:uuid;not null" json:"role_id"`

	Role           *Role            `gorm:"foreignKey:RoleID"`
	Favorites      []*Favorite      `gorm:"foreignKey:UserID"`
	NutritionGoals []*NutritionGoal `gorm:"foreignKey:UserID"`
	RatingComments []*RatingComment `gorm:"foreignKey:UserID"`
	Timestamp
}
