package handlers

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/internal/api/presenters"
	"SmartMenza-Backend/pkg/goal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GoalHandler interface {
		CreateGoal(c *fiber.Ctx) error
		GetGoal(c *fiber.Ctx) error
	}

	goalHandler struct {
		goalService goal.GoalService
		validator   *validator.Validate
	}
)

func NewGoalHandler(goalService goal.GoalService, validator *validator.Validate) GoalHandler {
	return &goalHandler{
		goalService: goalService,
		validator:   validator,
	}
}

func (h *goalHandler) CreateGoal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateGoalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateGoal, err)
	}

	res, err := h.goalService.CreateGoal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateGoal, err)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *goalHandler) GetGoal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.goalService.GetGoal(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetGoal, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
