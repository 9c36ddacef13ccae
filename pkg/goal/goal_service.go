package goal

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GoalService interface {
		CreateGoal(ctx context.Context, req domain.CreateGoalRequest, userID string) (domain.CreateGoalResponse, error)
		GetGoal(ctx context.Context, userID string) (domain.GoalResponse, error)
	}

	goalService struct {
		goalRepository GoalRepository
	}
)

func NewGoalService(goalRepository GoalRepository) GoalService {
	return &goalService{goalRepository: goalRepository}
}

func goalResponse(goal *entities.NutritionGoal) domain.GoalResponse {
	return domain.GoalResponse{
		ID:            goal.ID.String(),
		Calories:      goal.Calories,
		Protein:       goal.Protein,
		Carbohydrates: goal.Carbohydrates,
		Fat:           goal.Fat,
		DateSet:       goal.DateSet,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, req domain.CreateGoalRequest, userID string) (domain.CreateGoalResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateGoalResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	goal := &entities.NutritionGoal{
		ID:            uuid.New(),
		UserID:        userUUID,
		Calories:      req.Calories,
		Protein:       req.TargetProtein,
		Carbohydrates: req.TargetCarbs,
		Fat:           req.TargetFats,
		DateSet:       today,
	}

	if err := s.goalRepository.CreateGoal(ctx, goal); err != nil {
		return domain.CreateGoalResponse{}, err
	}

	return domain.CreateGoalResponse{
		Message: domain.MessageSuccessCreateGoal,
		Goal:    goalResponse(goal),
	}, nil
}

func (s *goalService) GetGoal(ctx context.Context, userID string) (domain.GoalResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GoalResponse{}, domain.ErrParseUUID
	}

	goal, err := s.goalRepository.GetLatestGoal(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GoalResponse{}, domain.ErrGoalNotFound
		}
		return domain.GoalResponse{}, err
	}

	return goalResponse(goal), nil
}
