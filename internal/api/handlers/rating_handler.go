package handlers

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/internal/api/presenters"
	"SmartMenza-Backend/pkg/rating"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		SubmitRating(c *fiber.Ctx) error
		UpdateRating(c *fiber.Ctx) error
		GetMealRatingSummary(c *fiber.Ctx) error
		GetOverallStats(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) SubmitRating(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitRatingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitRating, err)
	}

	res, err := h.ratingService.SubmitRating(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSubmitRating, err)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *ratingHandler) UpdateRating(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitRatingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRating, err)
	}

	res, err := h.ratingService.UpdateRating(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateRating, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *ratingHandler) GetMealRatingSummary(c *fiber.Ctx) error {
	mealID := c.Query("mealId")
	if mealID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, domain.ErrParseUUID)
	}

	res, err := h.ratingService.GetMealRatingSummary(c.Context(), mealID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetSummary, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *ratingHandler) GetOverallStats(c *fiber.Ctx) error {
	dateFrom := c.Query("dateFrom")
	dateTo := c.Query("dateTo")

	res, err := h.ratingService.GetOverallStats(c.Context(), dateFrom, dateTo)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetStats, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
