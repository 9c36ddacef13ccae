package favorite

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/internal/utils"
	"context"

	"github.com/google/uuid"
)

type (
	FavoriteService interface {
		ToggleFavorite(ctx context.Context, req domain.ToggleFavoriteRequest, userID string) (domain.ToggleFavoriteResponse, error)
		ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteMealResponse, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		baseURL            string
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		baseURL:            utils.GetConfig("APP_URL"),
	}
}

func (s *favoriteService) ToggleFavorite(ctx context.Context, req domain.ToggleFavoriteRequest, userID string) (domain.ToggleFavoriteResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, domain.ErrParseUUID
	}
	mealUUID, err := uuid.Parse(req.MealID)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, domain.ErrParseUUID
	}

	exists, err := s.favoriteRepository.MealExists(ctx, mealUUID)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, err
	}
	if !exists {
		return domain.ToggleFavoriteResponse{}, domain.ErrFavoriteMealMissing
	}

	isFavorite, err := s.favoriteRepository.ToggleFavorite(ctx, userUUID, mealUUID)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, err
	}

	return domain.ToggleFavoriteResponse{IsFavorite: isFavorite}, nil
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteMealResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	favorites, err := s.favoriteRepository.GetFavoriteMeals(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FavoriteMealResponse, 0, len(favorites))
	for _, fav := range favorites {
		if fav.Meal == nil {
			continue
		}
		mealType := ""
		if fav.Meal.MealType != nil {
			mealType = fav.Meal.MealType.Name
		}
		response = append(response, domain.FavoriteMealResponse{
			MealID:   fav.MealID.String(),
			MealType: mealType,
			Name:     fav.Meal.Name,
			Calories: fav.Meal.Calories,
			Protein:  fav.Meal.Protein,
			ImageURL: utils.ResolveImageURL(s.baseURL, fav.Meal.ImageURL),
		})
	}

	return response, nil
}
