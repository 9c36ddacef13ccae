package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateGoal = "goal saved successfully"
	MessageFailedCreateGoal  = "failed to save goal"
	MessageFailedGetGoal     = "failed to retrieve goal"

	ErrGoalNotFound = errors.New("no goal set for user")
)

type (
	CreateGoalRequest struct {
		Calories      float64 `json:"calories" validate:"min=0"`
		TargetProtein float64 `json:"targetProteins" validate:"min=0"`
		TargetCarbs   float64 `json:"targetCarbs" validate:"min=0"`
		TargetFats    float64 `json:"targetFats" validate:"min=0"`
	}

	GoalResponse struct {
		ID            string    `json:"id"`
		Calories      float64   `json:"calories"`
		Protein       float64   `json:"protein"`
		Carbohydrates float64   `json:"carbohydrates"`
		Fat           float64   `json:"fat"`
		DateSet       time.Time `json:"date_set"`
	}

	CreateGoalResponse struct {
		Message string       `json:"message"`
		Goal    GoalResponse `json:"goal"`
	}
)
