package menu

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/entities"
	"SmartMenza-Backend/internal/utils"
	"SmartMenza-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		GetMenuByDate(ctx context.Context, date string) (domain.MenuResponse, error)
		GetMenusByDate(ctx context.Context, date string) ([]domain.MenuResponse, error)
		CreateMenu(ctx context.Context, req domain.CreateMenuRequest) (domain.MenuResponse, error)
		CreateMeal(ctx context.Context, req domain.CreateMealRequest) (domain.MealResponse, error)
		UploadMealImage(ctx context.Context, req domain.UploadMealImageRequest) error
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
		baseURL        string
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
		baseURL:        utils.GetConfig("APP_URL"),
	}
}

func (s *menuService) mealResponse(meal *entities.Meal) domain.MealResponse {
	mealType := ""
	if meal.MealType != nil {
		mealType = meal.MealType.Name
	}
	return domain.MealResponse{
		ID:            meal.ID.String(),
		MealType:      mealType,
		Name:          meal.Name,
		Description:   meal.Description,
		Price:         meal.Price,
		Calories:      meal.Calories,
		Protein:       meal.Protein,
		Carbohydrates: meal.Carbohydrates,
		Fat:           meal.Fat,
		ImageURL:      utils.ResolveImageURL(s.baseURL, meal.ImageURL),
	}
}

func (s *menuService) menuResponse(menu *entities.Menu) domain.MenuResponse {
	meals := make([]domain.MealResponse, 0, len(menu.Items))
	for _, item := range menu.Items {
		if item.Meal == nil {
			continue
		}
		meals = append(meals, s.mealResponse(item.Meal))
	}
	return domain.MenuResponse{
		ID:           menu.ID.String(),
		Name:         menu.Name,
		Description:  menu.Description,
		Date:         menu.Date,
		MenuTypeName: menu.MenuTypeName,
		Meals:        meals,
	}
}

func (s *menuService) GetMenuByDate(ctx context.Context, date string) (domain.MenuResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return domain.MenuResponse{}, domain.ErrInvalidDate
	}

	menu, err := s.menuRepository.GetMenuByDate(ctx, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuResponse{}, domain.ErrMenuNotFound
		}
		return domain.MenuResponse{}, err
	}

	return s.menuResponse(menu), nil
}

func (s *menuService) GetMenusByDate(ctx context.Context, date string) ([]domain.MenuResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	menus, err := s.menuRepository.GetMenusByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuResponse, 0, len(menus))
	for _, menu := range menus {
		response = append(response, s.menuResponse(menu))
	}
	return response, nil
}

func (s *menuService) CreateMenu(ctx context.Context, req domain.CreateMenuRequest) (domain.MenuResponse, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.MenuResponse{}, domain.ErrInvalidDate
	}

	menu := &entities.Menu{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		Date:         day,
		MenuTypeName: req.MenuTypeName,
	}

	// Position follows the order meal ids arrive in; that stays the serving order.
	for i, mealID := range req.MealIDs {
		mealUUID, err := uuid.Parse(mealID)
		if err != nil {
			return domain.MenuResponse{}, domain.ErrParseUUID
		}
		if _, err := s.menuRepository.GetMealByID(ctx, mealID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.MenuResponse{}, domain.ErrMealNotFound
			}
			return domain.MenuResponse{}, err
		}
		menu.Items = append(menu.Items, &entities.MenuItem{
			ID:       uuid.New(),
			MenuID:   menu.ID,
			MealID:   mealUUID,
			Position: i,
		})
	}

	if err := s.menuRepository.CreateMenu(ctx, menu); err != nil {
		return domain.MenuResponse{}, err
	}

	// Reload by id: the date may already carry other menus, and a date lookup
	// would not necessarily return the row just created.
	created, err := s.menuRepository.GetMenuByID(ctx, menu.ID.String())
	if err != nil {
		return domain.MenuResponse{}, err
	}
	return s.menuResponse(created), nil
}

func (s *menuService) CreateMeal(ctx context.Context, req domain.CreateMealRequest) (domain.MealResponse, error) {
	mealType, err := s.menuRepository.GetMealTypeByName(ctx, req.MealTypeName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealResponse{}, domain.ErrInvalidMealType
		}
		return domain.MealResponse{}, err
	}

	meal := &entities.Meal{
		ID:            uuid.New(),
		MealTypeID:    mealType.ID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
	}

	if err := s.menuRepository.CreateMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	meal.MealType = mealType
	return s.mealResponse(meal), nil
}

func (s *menuService) UploadMealImage(ctx context.Context, req domain.UploadMealImageRequest) error {
	meal, err := s.menuRepository.GetMealByID(ctx, req.MealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}

	fileName := fmt.Sprintf("meal-%s", meal.ID.String())
	var objectKey string
	var uploadErr error

	if meal.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(meal.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "meals", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "meals", storage.AllowImage...)
	}
	if uploadErr != nil {
		return uploadErr
	}

	meal.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.menuRepository.UpdateMeal(ctx, meal)
}
