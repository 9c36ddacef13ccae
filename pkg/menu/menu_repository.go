package menu

import (
	"SmartMenza-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		GetMenuByDate(ctx context.Context, date time.Time) (*entities.Menu, error)
		GetMenusByDate(ctx context.Context, date time.Time) ([]*entities.Menu, error)
		GetMenuByID(ctx context.Context, id string) (*entities.Menu, error)
		CreateMenu(ctx context.Context, menu *entities.Menu) error
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		GetMealByID(ctx context.Context, id string) (*entities.Meal, error)
		UpdateMeal(ctx context.Context, meal *entities.Meal) error
		GetMealTypeByName(ctx context.Context, name string) (*entities.MealType, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("menu_items.position ASC")
}

func (r *menuRepository) GetMenuByDate(ctx context.Context, date time.Time) (*entities.Menu, error) {
	var menu entities.Menu
	if err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Preload("Items.Meal").
		Preload("Items.Meal.MealType").
		Where("date = ?", date).
		First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) GetMenusByDate(ctx context.Context, date time.Time) ([]*entities.Menu, error) {
	var menus []*entities.Menu
	if err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Preload("Items.Meal").
		Preload("Items.Meal.MealType").
		Where("date = ?", date).
		Order("created_at ASC").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) GetMenuByID(ctx context.Context, id string) (*entities.Menu, error) {
	var menu entities.Menu
	if err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Preload("Items.Meal").
		Preload("Items.Meal.MealType").
		Where("id = ?", id).
		First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) CreateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *menuRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).Preload("MealType").Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *menuRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *menuRepository) GetMealTypeByName(ctx context.Context, name string) (*entities.MealType, error) {
	var mealType entities.MealType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&mealType).Error; err != nil {
		return nil, err
	}
	return &mealType, nil
}
