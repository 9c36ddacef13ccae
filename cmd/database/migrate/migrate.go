package migration

import (
	"SmartMenza-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.Role{},
		&entities.User{},
		&entities.MealType{},
		&entities.Meal{},
		&entities.Menu{},
		&entities.MenuItem{},
		&entities.NutritionGoal{},
		&entities.Favorite{},
		&entities.RatingComment{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedMealTypes(db); err != nil {
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seedRoles(db *gorm.DB) error {
	for _, name := range []string{"student", "employee", "admin"} {
		var count int64
		if err := db.Model(&entities.Role{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&entities.Role{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedMealTypes(db *gorm.DB) error {
	for _, name := range []string{"breakfast", "lunch", "dinner"} {
		var count int64
		if err := db.Model(&entities.MealType{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&entities.MealType{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
