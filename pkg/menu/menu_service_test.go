package menu

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMenuRepository struct {
	menusByDate map[string][]*entities.Menu
	mealsByID   map[string]*entities.Meal
	mealTypes   map[string]*entities.MealType
}

func newFakeMenuRepository() *fakeMenuRepository {
	return &fakeMenuRepository{
		menusByDate: map[string][]*entities.Menu{},
		mealsByID:   map[string]*entities.Meal{},
		mealTypes:   map[string]*entities.MealType{"lunch": {ID: uuid.New(), Name: "lunch"}},
	}
}

func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

func (f *fakeMenuRepository) GetMenuByDate(_ context.Context, date time.Time) (*entities.Menu, error) {
	menus := f.menusByDate[dateKey(date)]
	if len(menus) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return menus[0], nil
}

func (f *fakeMenuRepository) GetMenusByDate(_ context.Context, date time.Time) ([]*entities.Menu, error) {
	return f.menusByDate[dateKey(date)], nil
}

func (f *fakeMenuRepository) GetMenuByID(_ context.Context, id string) (*entities.Menu, error) {
	for _, menus := range f.menusByDate {
		for _, menu := range menus {
			if menu.ID.String() == id {
				return menu, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuRepository) CreateMenu(_ context.Context, menu *entities.Menu) error {
	for _, item := range menu.Items {
		item.Meal = f.mealsByID[item.MealID.String()]
	}
	key := dateKey(menu.Date)
	f.menusByDate[key] = append(f.menusByDate[key], menu)
	return nil
}

func (f *fakeMenuRepository) CreateMeal(_ context.Context, meal *entities.Meal) error {
	f.mealsByID[meal.ID.String()] = meal
	return nil
}

func (f *fakeMenuRepository) GetMealByID(_ context.Context, id string) (*entities.Meal, error) {
	meal, ok := f.mealsByID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return meal, nil
}

func (f *fakeMenuRepository) UpdateMeal(_ context.Context, meal *entities.Meal) error {
	f.mealsByID[meal.ID.String()] = meal
	return nil
}

func (f *fakeMenuRepository) GetMealTypeByName(_ context.Context, name string) (*entities.MealType, error) {
	mealType, ok := f.mealTypes[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return mealType, nil
}

func seedMeal(repo *fakeMenuRepository, name string) *entities.Meal {
	mealType := repo.mealTypes["lunch"]
	meal := &entities.Meal{
		ID:         uuid.New(),
		MealTypeID: mealType.ID,
		MealType:   mealType,
		Name:       name,
		Price:      3.5,
	}
	repo.mealsByID[meal.ID.String()] = meal
	return meal
}

func TestGetMenuByDateNotFound(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, nil)

	_, err := svc.GetMenuByDate(context.Background(), "2024-05-01")
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}

func TestGetMenuByDateInvalidDate(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, nil)

	_, err := svc.GetMenuByDate(context.Background(), "01.05.2024")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetMenusByDateEmptyIsNotAnError(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, nil)

	menus, err := svc.GetMenusByDate(context.Background(), "2024-05-01")
	require.NoError(t, err)
	assert.Empty(t, menus)
}

func TestCreateMenuPreservesMealOrder(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, nil)

	soup := seedMeal(repo, "soup")
	beans := seedMeal(repo, "beans")
	salad := seedMeal(repo, "salad")

	created, err := svc.CreateMenu(context.Background(), domain.CreateMenuRequest{
		Name:    "Daily menu",
		Date:    "2024-05-01",
		MealIDs: []string{soup.ID.String(), beans.ID.String(), salad.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, created.Meals, 3)
	assert.Equal(t, "soup", created.Meals[0].Name)
	assert.Equal(t, "beans", created.Meals[1].Name)
	assert.Equal(t, "salad", created.Meals[2].Name)
}

func TestCreateMenuOnDateWithExistingMenu(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, nil)

	breakfast := &entities.Menu{
		ID:   uuid.New(),
		Name: "breakfast menu",
		Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	repo.menusByDate["2024-05-01"] = []*entities.Menu{breakfast}

	soup := seedMeal(repo, "soup")
	created, err := svc.CreateMenu(context.Background(), domain.CreateMenuRequest{
		Name:    "lunch menu",
		Date:    "2024-05-01",
		MealIDs: []string{soup.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, "lunch menu", created.Name)
	assert.NotEqual(t, breakfast.ID.String(), created.ID)
}

func TestCreateMenuUnknownMeal(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, nil)

	_, err := svc.CreateMenu(context.Background(), domain.CreateMenuRequest{
		Name:    "Daily menu",
		Date:    "2024-05-01",
		MealIDs: []string{uuid.NewString()},
	})
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}

func TestCreateMealUnknownType(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo, nil)

	_, err := svc.CreateMeal(context.Background(), domain.CreateMealRequest{
		MealTypeName: "brunch",
		Name:         "pancakes",
		Price:        2,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMealType)
}

func TestMealResponseResolvesBareFilename(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := &menuService{menuRepository: repo, baseURL: "https://menza.example.com"}

	meal := seedMeal(repo, "beans")
	meal.ImageURL = "beans.jpg"

	menu := &entities.Menu{
		ID:   uuid.New(),
		Name: "Daily menu",
		Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Items: []*entities.MenuItem{
			{ID: uuid.New(), MealID: meal.ID, Meal: meal, Position: 0},
		},
	}
	repo.menusByDate["2024-05-01"] = []*entities.Menu{menu}

	res, err := svc.GetMenuByDate(context.Background(), "2024-05-01")
	require.NoError(t, err)
	require.Len(t, res.Meals, 1)
	assert.Equal(t, "https://menza.example.com/images/meals/beans.jpg", res.Meals[0].ImageURL)
}
